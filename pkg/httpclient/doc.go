// Package httpclient は外部APIへのHTTP通信を行うクライアントを提供する。
//
// GitHubリポジトリ一覧APIなど、サードパーティAPIの呼び出しに使用する。
// タイムアウトを持ち、応答が返らない外部呼び出しがリクエスト処理を
// 無期限に塞ぐことを防ぐ。
package httpclient

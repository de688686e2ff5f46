// Package api はdevconnectのREST APIサーバーの内部実装を提供する。
//
// ユーザー登録とログイン（JWT発行）、認証ミドルウェアによる保護、
// プロフィール（経歴・学歴を含む）のCRUD、投稿（いいね・コメントを含む）の
// CRUD、およびGitHubリポジトリ一覧APIへのプロキシを担当する。
// 永続化はSQLite、クエリはsqlcが生成したinternal/api/dbパッケージを使用する。
package api

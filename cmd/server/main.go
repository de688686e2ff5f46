// APIサーバーのエントリポイント。
// ユーザー登録・認証、プロフィール管理、投稿、GitHubリポジトリ連携を提供する。
package main

import (
	"log"

	"github.com/nao1215/devconnect/internal/api"
)

func main() {
	cfg := api.LoadConfig()

	server, err := api.NewServer(cfg)
	if err != nil {
		log.Fatalf("APIサーバーの初期化に失敗: %v", err)
	}

	log.Printf("APIサーバーを起動します: :%s", cfg.Port)
	if err := server.Run(); err != nil {
		log.Fatalf("APIサーバーの起動に失敗: %v", err)
	}
}

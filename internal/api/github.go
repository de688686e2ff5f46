package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleGitHubRepos は指定GitHubユーザーの最新リポジトリ一覧取得を処理する
// ハンドラを返す。GitHub APIへのプロキシとして動作し、作成日昇順で
// 最大5件を返す。認証不要の公開エンドポイント。
func (s *Server) handleGitHubRepos() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		path := fmt.Sprintf("/users/%s/repos?per_page=5&sort=created:asc", username)

		header := http.Header{}
		header.Set("User-Agent", "devconnect")
		if s.cfg.GitHubToken != "" {
			header.Set("Authorization", "token "+s.cfg.GitHubToken)
		}

		resp, err := s.githubClient.Get(c.Request.Context(), path, header)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "GitHub APIへのリクエストに失敗しました"})
			log.Printf("GitHub APIリクエストエラー: %v", err)
			return
		}

		if resp.StatusCode != http.StatusOK {
			c.JSON(http.StatusNotFound, gin.H{"msg": "GitHubプロフィールが見つかりません"})
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", resp.Body)
	}
}

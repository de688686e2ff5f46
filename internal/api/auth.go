package api

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/devconnect/pkg/middleware"
	"github.com/nao1215/devconnect/pkg/password"
)

// loginRequest はログインリクエストのJSON構造。
type loginRequest struct {
	// Email はメールアドレス。
	Email string `json:"email"`
	// Password は平文パスワード。
	Password string `json:"password"`
}

// msgInvalidCredentials は認証失敗時のメッセージ。
// アカウントの存在有無を漏らさないよう、ユーザー不在とパスワード不一致で
// 同一のメッセージを返す。
const msgInvalidCredentials = "認証情報が正しくありません"

// handleLogin はログイン（認証とJWT発行）を処理するハンドラを返す。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: "リクエストボディが不正です"}}})
			return
		}

		var errs []fieldError
		if !isValidEmail(req.Email) {
			errs = append(errs, fieldError{Msg: "有効なメールアドレスを指定してください"})
		}
		if req.Password == "" {
			errs = append(errs, fieldError{Msg: "パスワードは必須です"})
		}
		if len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		user, err := s.queries.GetUserByEmail(c.Request.Context(), req.Email)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: msgInvalidCredentials}}})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの取得に失敗しました"})
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		if err := password.Compare(user.PasswordHash, req.Password); err != nil {
			if errors.Is(err, password.ErrMismatch) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: msgInvalidCredentials}}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "認証処理に失敗しました"})
			log.Printf("パスワード照合エラー: %v", err)
			return
		}

		token, err := middleware.GenerateJWT(s.cfg.JWTSecret, user.ID, user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "トークンの生成に失敗しました"})
			log.Printf("JWT生成エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// handleGetCurrentUser は認証済みユーザーの情報を返すハンドラを返す。
// パスワードハッシュはレスポンスに含めない。
func (s *Server) handleGetCurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		user, err := s.queries.GetUserByID(c.Request.Context(), userID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "ユーザーが見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの取得に失敗しました"})
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toUserResponse(user))
	}
}

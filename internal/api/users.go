package api

import (
	"crypto/md5"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apidb "github.com/nao1215/devconnect/internal/api/db"
	"github.com/nao1215/devconnect/pkg/middleware"
	"github.com/nao1215/devconnect/pkg/password"
)

// registerRequest はユーザー登録リクエストのJSON構造。
type registerRequest struct {
	// Name は表示名。
	Name string `json:"name"`
	// Email はメールアドレス。一意である必要がある。
	Email string `json:"email"`
	// Password は平文パスワード。6文字以上。
	Password string `json:"password"`
}

// userResponse はユーザーのJSONレスポンス構造。
// パスワードハッシュは決して含めない。
type userResponse struct {
	// ID はユーザーの一意識別子。
	ID string `json:"id"`
	// Name は表示名。
	Name string `json:"name"`
	// Email はメールアドレス。
	Email string `json:"email"`
	// AvatarURL はアバター画像のURL。
	AvatarURL string `json:"avatar_url"`
	// CreatedAt は登録日時。
	CreatedAt string `json:"created_at"`
}

// toUserResponse はDB行をJSONレスポンスに変換する。
func toUserResponse(u apidb.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AvatarURL: u.AvatarUrl,
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// isValidEmail はメールアドレスの形式を検証する。
func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// avatarURL はメールアドレスからGravatarのアバターURLを導出する。
// GravatarのURL仕様に従い、小文字化したメールアドレスのMD5ハッシュを使用する。
func avatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}

// handleRegister はユーザー登録を処理するハンドラを返す。
// 登録に成功した場合はJWTトークンを返し、そのままログイン状態になる。
func (s *Server) handleRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: "リクエストボディが不正です"}}})
			return
		}

		var errs []fieldError
		if strings.TrimSpace(req.Name) == "" {
			errs = append(errs, fieldError{Msg: "名前は必須です"})
		}
		if !isValidEmail(req.Email) {
			errs = append(errs, fieldError{Msg: "有効なメールアドレスを指定してください"})
		}
		if len(req.Password) < 6 {
			errs = append(errs, fieldError{Msg: "パスワードは6文字以上で指定してください"})
		}
		if len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		// メールアドレスの重複を確認する
		_, err := s.queries.GetUserByEmail(c.Request.Context(), req.Email)
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []fieldError{{Msg: "このメールアドレスは既に登録されています"}}})
			return
		}
		if err != sql.ErrNoRows {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの取得に失敗しました"})
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		hash, err := password.Hash(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの登録に失敗しました"})
			log.Printf("パスワードハッシュ化エラー: %v", err)
			return
		}

		userID := uuid.New().String()
		if err := s.queries.CreateUser(c.Request.Context(), apidb.CreateUserParams{
			ID:           userID,
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			AvatarUrl:    avatarURL(req.Email),
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの登録に失敗しました"})
			log.Printf("ユーザー登録エラー: %v", err)
			return
		}

		token, err := middleware.GenerateJWT(s.cfg.JWTSecret, userID, req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "トークンの生成に失敗しました"})
			log.Printf("JWT生成エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

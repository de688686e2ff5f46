package api

import (
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"
	apidb "github.com/nao1215/devconnect/internal/api/db"
	"github.com/nao1215/devconnect/pkg/httpclient"
	"github.com/nao1215/devconnect/pkg/middleware"
)

// Server はdevconnect APIのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// cfg はプロセス全体の設定。起動時に一度だけ読み込まれ変更されない。
	cfg Config
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *apidb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// githubClient はGitHub APIへのHTTPクライアント。
	githubClient *httpclient.Client
}

// NewServer は新しいAPIサーバーを生成する。
// SQLiteデータベースの初期化とスキーマ作成を行う。
func NewServer(cfg Config) (*Server, error) {
	sqlDB, err := sql.Open("sqlite", cfg.DBPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{cfg.FrontendURL}))

	s := &Server{
		router:       router,
		cfg:          cfg,
		queries:      apidb.New(sqlDB),
		db:           sqlDB,
		githubClient: httpclient.New(cfg.GitHubAPIURL),
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.cfg.Port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	auth := middleware.JWTAuth(s.cfg.JWTSecret)

	api := s.router.Group("/api")
	{
		// ユーザー登録（認証不要）
		api.POST("/users", s.handleRegister())

		// 認証
		api.POST("/auth", s.handleLogin())
		api.GET("/auth", auth, s.handleGetCurrentUser())

		profile := api.Group("/profile")
		{
			// 公開エンドポイント
			profile.GET("", s.handleListProfiles())
			profile.GET("/user/:user_id", s.handleGetProfileByUserID())
			profile.GET("/github/:username", s.handleGitHubRepos())

			// 認証必須エンドポイント
			profile.GET("/me", auth, s.handleGetMyProfile())
			profile.POST("", auth, s.handleUpsertProfile())
			profile.DELETE("", auth, s.handleDeleteAccount())
			profile.PUT("/experience", auth, s.handleAddExperience())
			profile.DELETE("/experience/:id", auth, s.handleDeleteExperience())
			profile.PUT("/education", auth, s.handleAddEducation())
			profile.DELETE("/education/:id", auth, s.handleDeleteEducation())
		}

		posts := api.Group("/posts")
		posts.Use(auth)
		{
			posts.POST("", s.handleCreatePost())
			posts.GET("", s.handleListPosts())
			posts.GET("/:id", s.handleGetPost())
			posts.DELETE("/:id", s.handleDeletePost())
			posts.PUT("/like/:id", s.handleLikePost())
			posts.PUT("/unlike/:id", s.handleUnlikePost())
			posts.POST("/comment/:id", s.handleAddComment())
			posts.DELETE("/comment/:id/:comment_id", s.handleDeleteComment())
		}
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "devconnect"})
	})
}

// fieldError はバリデーションエラー1件を表すJSON構造。
type fieldError struct {
	// Msg はエラーメッセージ。
	Msg string `json:"msg"`
}

package api

import "os"

// Config はプロセス全体の設定。起動時に一度だけ環境変数から読み込み、
// 以後は不変の値としてサーバーに明示的に渡す。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string
	// DBPath はSQLiteデータベースファイルのパス。
	DBPath string
	// JWTSecret はJWT署名用の秘密鍵。
	JWTSecret string
	// GitHubAPIURL はGitHub APIのベースURL。テスト時にモックへ差し替える。
	GitHubAPIURL string
	// GitHubToken はGitHub APIのアクセストークン（省略可）。
	GitHubToken string
	// FrontendURL はCORSで許可するフロントエンドのオリジン。
	FrontendURL string
}

// LoadConfig は環境変数からConfigを構築する。
func LoadConfig() Config {
	return Config{
		Port:         getEnvOr("PORT", "8080"),
		DBPath:       getEnvOr("DB_PATH", "/data/devconnect.db"),
		JWTSecret:    getEnvOr("JWT_SECRET", "dev-secret-key"),
		GitHubAPIURL: getEnvOr("GITHUB_API_URL", "https://api.github.com"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		FrontendURL:  getEnvOr("FRONTEND_URL", "http://localhost:3000"),
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

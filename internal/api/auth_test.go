package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nao1215/devconnect/pkg/middleware"
)

// expiredAuthToken は有効期限切れのJWTを発行するヘルパー関数。
// 署名は正しいが有効期限が過去になっている。
func expiredAuthToken(t *testing.T, userID, email string) string {
	t.Helper()

	claims := middleware.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "devconnect-api",
		},
		UserID: userID,
		Email:  email,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("期限切れJWTの発行に失敗: %v", err)
	}
	return token
}

// TestHandleLogin はログインハンドラのテスト。
func TestHandleLogin(t *testing.T) {
	t.Parallel()

	t.Run("正しい認証情報でトークンを取得できる", func(t *testing.T) {
		t.Parallel()
		s, router := setupTestServer(t)

		createTestUser(t, s, "user-1", "山田太郎", "taro@example.com", "secret123")

		body := map[string]string{
			"email":    "taro@example.com",
			"password": "secret123",
		}
		w := doRequest(router, http.MethodPost, "/api/auth", "", body)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード: got %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		result := parseJSON(t, w)
		token, ok := result["token"].(string)
		if !ok || token == "" {
			t.Fatal("tokenが含まれていません")
		}
	})

	t.Run("存在しないメールアドレスはBadRequest", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		body := map[string]string{
			"email":    "nobody@example.com",
			"password": "secret123",
		}
		w := doRequest(router, http.MethodPost, "/api/auth", "", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
		msgs := errorMessages(t, w)
		if len(msgs) != 1 || msgs[0] != msgInvalidCredentials {
			t.Errorf("エラーメッセージ: got %v, want [%s]", msgs, msgInvalidCredentials)
		}
	})

	t.Run("パスワード不一致はBadRequest", func(t *testing.T) {
		t.Parallel()
		s, router := setupTestServer(t)

		createTestUser(t, s, "user-1", "山田太郎", "taro@example.com", "secret123")

		body := map[string]string{
			"email":    "taro@example.com",
			"password": "wrongpassword",
		}
		w := doRequest(router, http.MethodPost, "/api/auth", "", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
		msgs := errorMessages(t, w)
		if len(msgs) != 1 || msgs[0] != msgInvalidCredentials {
			t.Errorf("エラーメッセージ: got %v, want [%s]", msgs, msgInvalidCredentials)
		}
	})

	t.Run("ユーザー不在とパスワード不一致でレスポンスが同一", func(t *testing.T) {
		t.Parallel()
		s, router := setupTestServer(t)

		createTestUser(t, s, "user-1", "山田太郎", "taro@example.com", "secret123")

		noUser := doRequest(router, http.MethodPost, "/api/auth", "", map[string]string{
			"email":    "nobody@example.com",
			"password": "secret123",
		})
		wrongPass := doRequest(router, http.MethodPost, "/api/auth", "", map[string]string{
			"email":    "taro@example.com",
			"password": "wrongpassword",
		})

		if noUser.Code != wrongPass.Code {
			t.Errorf("ステータスコードが一致しません: %d vs %d", noUser.Code, wrongPass.Code)
		}
		if noUser.Body.String() != wrongPass.Body.String() {
			t.Errorf("レスポンスボディが一致しません: %s vs %s", noUser.Body.String(), wrongPass.Body.String())
		}
	})

	t.Run("メールアドレスが不正な場合はBadRequest", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		body := map[string]string{
			"email":    "not-an-email",
			"password": "secret123",
		}
		w := doRequest(router, http.MethodPost, "/api/auth", "", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("パスワードが未指定の場合はBadRequest", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		body := map[string]string{"email": "taro@example.com"}
		w := doRequest(router, http.MethodPost, "/api/auth", "", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

// TestHandleGetCurrentUser は認証済みユーザー情報取得ハンドラのテスト。
func TestHandleGetCurrentUser(t *testing.T) {
	t.Parallel()

	t.Run("有効なトークンで自分の情報を取得できる", func(t *testing.T) {
		t.Parallel()
		s, router := setupTestServer(t)

		createTestUser(t, s, "user-1", "山田太郎", "taro@example.com", "secret123")
		token := authToken(t, "user-1", "taro@example.com")

		w := doRequest(router, http.MethodGet, "/api/auth", token, nil)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード: got %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		result := parseJSON(t, w)
		if result["id"] != "user-1" {
			t.Errorf("id: got %v, want user-1", result["id"])
		}
		if result["name"] != "山田太郎" {
			t.Errorf("name: got %v, want 山田太郎", result["name"])
		}
		if _, exists := result["password_hash"]; exists {
			t.Error("パスワードハッシュがレスポンスに含まれています")
		}
	})

	t.Run("トークンなしはUnauthorized", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodGet, "/api/auth", "", nil)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("期限切れトークンはUnauthorized", func(t *testing.T) {
		t.Parallel()
		s, router := setupTestServer(t)

		createTestUser(t, s, "user-1", "山田太郎", "taro@example.com", "secret123")
		token := expiredAuthToken(t, "user-1", "taro@example.com")

		w := doRequest(router, http.MethodGet, "/api/auth", token, nil)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("削除済みユーザーのトークンはNotFound", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		token := authToken(t, "ghost-user", "ghost@example.com")

		w := doRequest(router, http.MethodGet, "/api/auth", token, nil)

		if w.Code != http.StatusNotFound {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

// TestAuthFlow は登録からログイン、認証付きアクセスまでの一連の流れを検証する。
func TestAuthFlow(t *testing.T) {
	t.Parallel()

	_, router := setupTestServer(t)

	// 登録
	w := doRequest(router, http.MethodPost, "/api/users", "", map[string]string{
		"name":     "佐藤花子",
		"email":    "hanako@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("登録に失敗: got %d, body=%s", w.Code, w.Body.String())
	}

	// ログイン
	w = doRequest(router, http.MethodPost, "/api/auth", "", map[string]string{
		"email":    "hanako@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("ログインに失敗: got %d, body=%s", w.Code, w.Body.String())
	}
	token, _ := parseJSON(t, w)["token"].(string)
	if token == "" {
		t.Fatal("tokenが含まれていません")
	}

	// 認証付きで自分の情報を取得する
	w = doRequest(router, http.MethodGet, "/api/auth", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("ユーザー情報の取得に失敗: got %d, body=%s", w.Code, w.Body.String())
	}
	result := parseJSON(t, w)
	if result["email"] != "hanako@example.com" {
		t.Errorf("email: got %v, want hanako@example.com", result["email"])
	}
}

package api

import (
	"net/http"
	"strings"
	"testing"
)

// TestHandleRegister はユーザー登録ハンドラのテスト。
func TestHandleRegister(t *testing.T) {
	t.Parallel()

	t.Run("正常にユーザーを登録できる", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		body := map[string]string{
			"name":     "山田太郎",
			"email":    "taro@example.com",
			"password": "secret123",
		}
		w := doRequest(router, http.MethodPost, "/api/users", "", body)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード: got %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		result := parseJSON(t, w)
		token, ok := result["token"].(string)
		if !ok || token == "" {
			t.Fatal("tokenが含まれていません")
		}

		// 発行されたトークンで現在のユーザーを取得できることを確認する
		w2 := doRequest(router, http.MethodGet, "/api/auth", token, nil)
		if w2.Code != http.StatusOK {
			t.Errorf("ステータスコード: got %d, want %d, body=%s", w2.Code, http.StatusOK, w2.Body.String())
		}

		user := parseJSON(t, w2)
		if user["name"] != "山田太郎" {
			t.Errorf("name: got %v, want 山田太郎", user["name"])
		}
		if user["email"] != "taro@example.com" {
			t.Errorf("email: got %v, want taro@example.com", user["email"])
		}
		avatar, _ := user["avatar_url"].(string)
		if !strings.HasPrefix(avatar, "https://www.gravatar.com/avatar/") {
			t.Errorf("avatar_urlがGravatarのURLではありません: %v", avatar)
		}
	})

	t.Run("名前が未指定の場合はBadRequest", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		body := map[string]string{
			"email":    "taro@example.com",
			"password": "secret123",
		}
		w := doRequest(router, http.MethodPost, "/api/users", "", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
		if msgs := errorMessages(t, w); len(msgs) == 0 {
			t.Error("エラーメッセージが含まれていません")
		}
	})

	t.Run("メールアドレスが不正な場合はBadRequest", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		body := map[string]string{
			"name":     "山田太郎",
			"email":    "not-an-email",
			"password": "secret123",
		}
		w := doRequest(router, http.MethodPost, "/api/users", "", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("パスワードが6文字未満の場合はBadRequest", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		body := map[string]string{
			"name":     "山田太郎",
			"email":    "taro@example.com",
			"password": "short",
		}
		w := doRequest(router, http.MethodPost, "/api/users", "", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("複数の入力不備はまとめて報告される", func(t *testing.T) {
		t.Parallel()
		_, router := setupTestServer(t)

		body := map[string]string{}
		w := doRequest(router, http.MethodPost, "/api/users", "", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
		if msgs := errorMessages(t, w); len(msgs) != 3 {
			t.Errorf("エラーメッセージ数: got %d, want 3, msgs=%v", len(msgs), msgs)
		}
	})

	t.Run("登録済みメールアドレスの場合はBadRequest", func(t *testing.T) {
		t.Parallel()
		s, router := setupTestServer(t)

		createTestUser(t, s, "user-1", "既存ユーザー", "taro@example.com", "secret123")

		body := map[string]string{
			"name":     "別のユーザー",
			"email":    "taro@example.com",
			"password": "another123",
		}
		w := doRequest(router, http.MethodPost, "/api/users", "", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
		msgs := errorMessages(t, w)
		if len(msgs) != 1 || msgs[0] != "このメールアドレスは既に登録されています" {
			t.Errorf("エラーメッセージ: got %v", msgs)
		}
	})
}

package password

import (
	"errors"
	"strings"
	"testing"
)

// TestHash はHash関数を検証する。
func TestHash(t *testing.T) {
	t.Parallel()

	t.Run("ハッシュが生成され平文と一致しないこと", func(t *testing.T) {
		t.Parallel()

		h, err := Hash("secret123")
		if err != nil {
			t.Fatalf("Hash()でエラーが発生: %v", err)
		}
		if h == "" {
			t.Fatal("Hash()が空文字列を返した")
		}
		if h == "secret123" {
			t.Fatal("ハッシュが平文と同一")
		}
		if !strings.HasPrefix(h, "$2") {
			t.Errorf("bcrypt形式のハッシュではない: %q", h)
		}
	})

	t.Run("同じパスワードでも毎回異なるハッシュが生成されること", func(t *testing.T) {
		t.Parallel()

		h1, err := Hash("secret123")
		if err != nil {
			t.Fatalf("Hash()でエラーが発生: %v", err)
		}
		h2, err := Hash("secret123")
		if err != nil {
			t.Fatalf("Hash()でエラーが発生: %v", err)
		}
		// ソルトが毎回変わるためハッシュも変わる
		if h1 == h2 {
			t.Error("ソルトが異なるのに同一のハッシュが生成された")
		}
	})
}

// TestCompare はCompare関数を検証する。
func TestCompare(t *testing.T) {
	t.Parallel()

	t.Run("正しいパスワードで照合に成功すること", func(t *testing.T) {
		t.Parallel()

		h, err := Hash("secret123")
		if err != nil {
			t.Fatalf("Hash()でエラーが発生: %v", err)
		}
		if err := Compare(h, "secret123"); err != nil {
			t.Errorf("Compare()でエラーが発生: %v", err)
		}
	})

	t.Run("誤ったパスワードでErrMismatchが返ること", func(t *testing.T) {
		t.Parallel()

		h, err := Hash("secret123")
		if err != nil {
			t.Fatalf("Hash()でエラーが発生: %v", err)
		}
		err = Compare(h, "wrong-password")
		if !errors.Is(err, ErrMismatch) {
			t.Errorf("Compare() = %v, want ErrMismatch", err)
		}
	})

	t.Run("ハッシュ形式でない文字列との照合がエラーになること", func(t *testing.T) {
		t.Parallel()

		if err := Compare("not-a-bcrypt-hash", "secret123"); err == nil {
			t.Error("不正なハッシュとの照合がエラーを返すべき")
		}
	})
}

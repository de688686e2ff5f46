// Package password はbcryptによるパスワードのハッシュ化と照合を提供する。
//
// 平文パスワードは保存せず、ソルト付きの一方向ハッシュのみを永続化する。
// 照合はbcryptの定数時間比較に委ねる。
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch はパスワードがハッシュと一致しないことを表す。
var ErrMismatch = errors.New("パスワードが一致しません")

// Hash は平文パスワードからbcryptハッシュを生成する。
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("パスワードのハッシュ化に失敗: %w", err)
	}
	return string(h), nil
}

// Compare は平文パスワードが保存済みハッシュと一致するか照合する。
// 一致しない場合はErrMismatchを返す。
func Compare(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("パスワードの照合に失敗: %w", err)
	}
	return nil
}

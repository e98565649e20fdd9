package usecase

import "golang.org/x/crypto/bcrypt"

// PasswordHasher はパスワードのハッシュ化と検証を抽象化します。
type PasswordHasher interface {
	// Hash は平文パスワードのハッシュを返します。
	Hash(password string) (string, error)
	// Compare はハッシュと平文パスワードを照合し、不一致ならエラーを返します。
	Compare(hash, password string) error
}

// bcryptHasher はPasswordHasherのbcrypt実装です。
type bcryptHasher struct {
	cost int
}

var _ PasswordHasher = (*bcryptHasher)(nil)

// NewBcryptHasher はデフォルトコストのbcryptHasherを生成します。
func NewBcryptHasher() *bcryptHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

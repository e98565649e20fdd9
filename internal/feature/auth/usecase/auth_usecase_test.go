package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"vehicle_backend/internal/feature/auth/domain/entity"
	"vehicle_backend/internal/platform/identity"
	jwtmw "vehicle_backend/internal/platform/jwt"
	"vehicle_backend/internal/platform/persistence"
)

// fakeUserRepo はUserRepositoryのテスト用実装です。
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// fakeIssuer は発行されたアイデンティティを記録するTokenIssuerです。
type fakeIssuer struct {
	issued *identity.Identity
	err    error
}

func (f *fakeIssuer) Encode(id identity.Identity) (jwtmw.Token, error) {
	if f.err != nil {
		return jwtmw.Token{}, f.err
	}
	f.issued = &id
	return jwtmw.Token{Value: "signed-token"}, nil
}

func testUser(t *testing.T, username, password string, admin bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		AuditFields:  persistence.AuditFields{ID: uuid.New()},
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      admin,
	}
}

// TestLogin_Success は正しい認証情報でトークンが発行され、
// アイデンティティにユーザーの属性が入ることを検証します。
func TestLogin_Success(t *testing.T) {
	t.Parallel()

	admin := testUser(t, "admin", "Admin@123", true)
	issuer := &fakeIssuer{}
	uc := NewAuthUsecase(&fakeUserRepo{users: map[string]*entity.User{"admin": admin}}, NewBcryptHasher(), issuer)

	token, err := uc.Login(context.Background(), "admin", "Admin@123")
	require.NoError(t, err)

	assert.Equal(t, "signed-token", token.Value)
	require.NotNil(t, issuer.issued)
	assert.Equal(t, admin.ID, issuer.issued.SubjectID)
	assert.Equal(t, "admin", issuer.issued.Username)
	assert.True(t, issuer.issued.IsAdmin)
}

// TestLogin_Failures は未知のユーザー・誤ったパスワードのどちらでも
// 同じ汎用エラーが返ることを検証します。
func TestLogin_Failures(t *testing.T) {
	t.Parallel()

	user := testUser(t, "user1", "User1@123", false)
	uc := NewAuthUsecase(&fakeUserRepo{users: map[string]*entity.User{"user1": user}}, NewBcryptHasher(), &fakeIssuer{})

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "nobody", "whatever"},
		{"wrong password", "user1", "wrong"},
		{"empty password", "user1", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := uc.Login(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

// TestLogin_IssuerError はトークン発行失敗が認証エラーと区別されることを検証します。
func TestLogin_IssuerError(t *testing.T) {
	t.Parallel()

	user := testUser(t, "user1", "User1@123", false)
	issuer := &fakeIssuer{err: errors.New("boom")}
	uc := NewAuthUsecase(&fakeUserRepo{users: map[string]*entity.User{"user1": user}}, NewBcryptHasher(), issuer)

	_, err := uc.Login(context.Background(), "user1", "User1@123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// TestBcryptHasher はハッシュ化と照合の往復を検証します。
func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()
	hash, err := h.Hash("Admin@123")
	require.NoError(t, err)
	assert.NotEqual(t, "Admin@123", hash)

	assert.NoError(t, h.Compare(hash, "Admin@123"))
	assert.Error(t, h.Compare(hash, "wrong"))
}

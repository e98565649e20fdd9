package usecase

import (
	"context"
	"fmt"

	"vehicle_backend/internal/feature/auth/domain/entity"
	"vehicle_backend/internal/platform/identity"
	jwtmw "vehicle_backend/internal/platform/jwt"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// GetByUsername は指定されたユーザー名に一致する未削除ユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

// TokenIssuer は認証済みアイデンティティの署名済みトークン発行を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// Encode は指定されたアイデンティティの署名済みトークンを生成します。
	Encode(id identity.Identity) (jwtmw.Token, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	issuer TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, issuer TokenIssuer) *authUsecase {
	return &authUsecase{users: users, hasher: hasher, issuer: issuer}
}

// Login はユーザーを認証し、成功時に署名済みトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもハッシュ比較を実行します。
func (u *authUsecase) Login(ctx context.Context, username, password string) (jwtmw.Token, error) {
	user, err := u.users.GetByUsername(ctx, username)

	// ユーザー未検出時のタイミング攻撃緩和用ダミーハッシュ。
	// hasher.Compareが常に呼ばれることを保証する。
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.PasswordHash
	}

	compareErr := u.hasher.Compare(passwordHash, password)

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return jwtmw.Token{}, ErrInvalidCredentials
	}

	token, err := u.issuer.Encode(identity.Identity{
		SubjectID: user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
	})
	if err != nil {
		return jwtmw.Token{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

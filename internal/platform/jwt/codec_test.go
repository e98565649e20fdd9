package jwtmw

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vehicle_backend/internal/platform/identity"
)

func testSettings() Settings {
	return Settings{
		Secret:          "test-secret",
		Issuer:          "vehicle_backend",
		Audience:        "vehicle_backend_clients",
		ExpirationHours: 2,
	}
}

// signClaims は任意のクレームセットから直接トークン文字列を生成するテストヘルパーです。
func signClaims(t *testing.T, secret string, claims tokenClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

// baseClaims は設定に対して有効なクレームセットを返します。
func baseClaims(settings Settings, expiresAt time.Time) tokenClaims {
	return tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			Issuer:    settings.Issuer,
			Audience:  jwt.ClaimStrings{settings.Audience},
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Name:     "tester",
		Username: "tester",
	}
}

// TestCodec_RoundTrip はencode→decodeでsubject・username・isAdminが保存されることを検証します。
func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   identity.Identity
	}{
		{"regular user", identity.Identity{SubjectID: uuid.New(), Username: "user1", IsAdmin: false}},
		{"admin user", identity.Identity{SubjectID: uuid.New(), Username: "admin", IsAdmin: true}},
		{"username with symbols", identity.Identity{SubjectID: uuid.New(), Username: "svc+ops@corp", IsAdmin: false}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			codec := NewCodec(testSettings())

			token, err := codec.Encode(tt.id)
			if err != nil {
				t.Fatalf("unexpected encode error: %v", err)
			}
			if token.Value == "" {
				t.Fatal("expected non-empty token value")
			}
			if !token.ExpiresAt.After(time.Now()) {
				t.Error("expected expiry in the future")
			}

			got, err := codec.Decode(token.Value)
			if err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if got.SubjectID != tt.id.SubjectID {
				t.Errorf("expected subject %s, got %s", tt.id.SubjectID, got.SubjectID)
			}
			if got.Username != tt.id.Username {
				t.Errorf("expected username %q, got %q", tt.id.Username, got.Username)
			}
			if got.IsAdmin != tt.id.IsAdmin {
				t.Errorf("expected isAdmin %v, got %v", tt.id.IsAdmin, got.IsAdmin)
			}
		})
	}
}

// TestCodec_Encode_Claims は発行されるクレームセット（sub/name/username/role/iss/aud/exp）を検証します。
func TestCodec_Encode_Claims(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	codec := NewCodec(settings)
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return fixed }

	subject := uuid.New()
	token, err := codec.Encode(identity.Identity{SubjectID: subject, Username: "admin", IsAdmin: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantExpiry := fixed.Add(2 * time.Hour)
	if !token.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("expected expiry %v, got %v", wantExpiry, token.ExpiresAt)
	}

	var claims tokenClaims
	if _, err := jwt.ParseWithClaims(token.Value, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(settings.Secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return fixed })); err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	if claims.Subject != subject.String() {
		t.Errorf("expected sub %q, got %q", subject, claims.Subject)
	}
	if claims.Name != "admin" || claims.Username != "admin" {
		t.Errorf("expected name/username \"admin\", got %q/%q", claims.Name, claims.Username)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("expected role %q, got %q", RoleAdmin, claims.Role)
	}
	if claims.Issuer != settings.Issuer {
		t.Errorf("expected issuer %q, got %q", settings.Issuer, claims.Issuer)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != settings.Audience {
		t.Errorf("expected audience %q, got %v", settings.Audience, claims.Audience)
	}
	if claims.ExpiresAt.Unix() != wantExpiry.Unix() {
		t.Errorf("expected exp %d, got %d", wantExpiry.Unix(), claims.ExpiresAt.Unix())
	}
}

// TestCodec_Encode_NonAdminHasNoRole は非管理者トークンにroleクレームが含まれないことを検証します。
func TestCodec_Encode_NonAdminHasNoRole(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	codec := NewCodec(settings)

	token, err := codec.Encode(identity.Identity{SubjectID: uuid.New(), Username: "user1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var claims tokenClaims
	if _, err := jwt.ParseWithClaims(token.Value, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(settings.Secret), nil
	}); err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.Role != "" {
		t.Errorf("expected empty role, got %q", claims.Role)
	}
}

// TestCodec_Decode_Expired は期限切れトークンがErrTokenExpiredになり、猶予が一切ないことを検証します。
func TestCodec_Decode_Expired(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	codec := NewCodec(settings)

	tests := []struct {
		name      string
		expiresAt time.Time
		wantErr   error
	}{
		{"expired one second ago", time.Now().Add(-time.Second), ErrTokenExpired},
		{"expired long ago", time.Now().Add(-24 * time.Hour), ErrTokenExpired},
		{"far in the future", time.Now().Add(1000 * time.Hour), nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value := signClaims(t, settings.Secret, baseClaims(settings, tt.expiresAt))

			_, err := codec.Decode(value)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestCodec_Decode_Invalid は期限切れ以外のあらゆる検証失敗がErrTokenInvalidになることを検証します。
func TestCodec_Decode_Invalid(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	codec := NewCodec(settings)
	future := time.Now().Add(time.Hour)

	wrongIssuer := baseClaims(settings, future)
	wrongIssuer.Issuer = "someone-else"

	wrongAudience := baseClaims(settings, future)
	wrongAudience.Audience = jwt.ClaimStrings{"other-clients"}

	badSubject := baseClaims(settings, future)
	badSubject.Subject = "not-a-uuid"

	// Tampered AND expired: the signature fails first, so this must be
	// invalid, not expired.
	tamperedExpired := signClaims(t, "other-secret", baseClaims(settings, time.Now().Add(-time.Hour)))

	tests := []struct {
		name  string
		value string
	}{
		{"empty string", ""},
		{"structurally malformed", "not.a.token"},
		{"garbage", "Bearer garbage"},
		{"tampered signature", signClaims(t, "other-secret", baseClaims(settings, future))},
		{"wrong issuer", signClaims(t, settings.Secret, wrongIssuer)},
		{"wrong audience", signClaims(t, settings.Secret, wrongAudience)},
		{"malformed subject", signClaims(t, settings.Secret, badSubject)},
		{"tampered and expired", tamperedExpired},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := codec.Decode(tt.value)
			if !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("expected ErrTokenInvalid, got %v", err)
			}
			if errors.Is(err, ErrTokenExpired) {
				t.Errorf("must not be classified as expired: %v", err)
			}
		})
	}
}

// TestCodec_Decode_RejectsNonHMAC はHMAC以外の署名アルゴリズムが拒否されることを検証します。
func TestCodec_Decode_RejectsNonHMAC(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	codec := NewCodec(settings)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, baseClaims(settings, time.Now().Add(time.Hour))).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	if _, err := codec.Decode(unsigned); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

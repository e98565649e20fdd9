// Package jwtmw provides the JWT token codec and the gin authentication
// middleware built on top of it.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vehicle_backend/internal/platform/identity"
)

// RoleAdmin is the role claim value carried by administrator tokens.
const RoleAdmin = "Admin"

var (
	// ErrTokenExpired is returned when a well-formed, correctly signed token
	// is past its expiry. Expiry is exact: there is no clock-skew grace.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned for every other decode failure: bad
	// signature, wrong issuer or audience, unexpected signing method, or a
	// structurally malformed token string.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Settings holds the signing configuration. All of it comes from external
// configuration; see platform/config.
type Settings struct {
	Secret          string
	Issuer          string
	Audience        string
	ExpirationHours int
}

// Token is a signed token value together with its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// tokenClaims is the claim set issued and accepted by the codec.
// name and username intentionally duplicate each other, matching the claim
// layout consumers of this API already depend on.
type tokenClaims struct {
	jwt.RegisteredClaims
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// Codec encodes identities into signed HS256 tokens and decodes them back.
type Codec struct {
	settings Settings
	now      func() time.Time
}

// NewCodec creates a Codec with the provided settings.
func NewCodec(settings Settings) *Codec {
	return &Codec{settings: settings, now: time.Now}
}

// Encode creates a signed token for the given identity, expiring
// ExpirationHours from now. It has no side effects.
func (c *Codec) Encode(id identity.Identity) (Token, error) {
	now := c.now().UTC()
	expiresAt := now.Add(time.Duration(c.settings.ExpirationHours) * time.Hour)

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.SubjectID.String(),
			Issuer:    c.settings.Issuer,
			Audience:  jwt.ClaimStrings{c.settings.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Name:     id.Username,
		Username: id.Username,
	}
	if id.IsAdmin {
		claims.Role = RoleAdmin
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(c.settings.Secret))
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Decode validates the token's signature, issuer, audience and expiry
// against the configured settings and returns the identity it carries.
//
// Expiry of a correctly signed token yields ErrTokenExpired; every other
// failure yields ErrTokenInvalid. Decode never panics on garbage input.
func (c *Codec) Decode(value string) (identity.Identity, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(value, &claims, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; anything else is forged or misissued.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(c.settings.Secret), nil
	},
		jwt.WithIssuer(c.settings.Issuer),
		jwt.WithAudience(c.settings.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		// Claims are only validated after the signature checks out, so an
		// expired error here always refers to a genuinely issued token.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return identity.Identity{}, ErrTokenExpired
		}
		return identity.Identity{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return identity.Identity{}, ErrTokenInvalid
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return identity.Identity{}, fmt.Errorf("%w: malformed subject claim", ErrTokenInvalid)
	}

	return identity.Identity{
		SubjectID: subject,
		Username:  claims.Username,
		IsAdmin:   claims.Role == RoleAdmin,
	}, nil
}

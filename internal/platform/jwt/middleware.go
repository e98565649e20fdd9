package jwtmw

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vehicle_backend/internal/platform/identity"
)

const bearerPrefix = "Bearer "

// TokenDecoder decodes a raw token value into an identity.
// Following Go convention: the interface is defined by the consumer
// (middleware), not the provider (Codec).
type TokenDecoder interface {
	Decode(value string) (identity.Identity, error)
}

// Authenticate returns a gin middleware that resolves the caller identity
// for the request from the Authorization header.
//
// The policy is deliberately asymmetric:
//   - no header, or not of the form "Bearer <token>": the request proceeds
//     unauthenticated;
//   - a token that fails validation for any reason other than expiry
//     (tampered, wrong issuer/audience, malformed): the request also
//     proceeds unauthenticated;
//   - an expired token: the request is rejected with 401 before any
//     downstream handler runs.
//
// Route-level authorization, where wanted, is layered on top of this.
func Authenticate(decoder TokenDecoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			c.Next()
			return
		}

		id, err := decoder.Decode(strings.TrimSpace(strings.TrimPrefix(auth, bearerPrefix)))
		switch {
		case err == nil:
			// Attach the identity to the request context so the
			// persistence layer can resolve the audit actor without
			// parameter threading. Identity is request-scoped by
			// construction: it lives on this request's context only.
			c.Request = c.Request.WithContext(identity.WithIdentity(c.Request.Context(), id))
		case errors.Is(err, ErrTokenExpired):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token has expired"})
			return
		default:
			// Invalid token: proceed unauthenticated.
		}

		c.Next()
	}
}

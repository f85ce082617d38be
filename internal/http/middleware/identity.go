package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// Identity reads an externally issued bearer token when one is
// present and records its subject for audit fields on bookings.
// Requests without a token pass through untouched; tokens are never
// minted or refreshed here.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if secret == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err == nil && token.Valid {
			if sub, err := token.Claims.GetSubject(); err == nil && sub != "" {
				c.Set(identityKey, sub)
			}
		}
		c.Next()
	}
}

// GetIdentity returns the authenticated subject, or "" for anonymous
// requests.
func GetIdentity(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if v, ok := c.Get(identityKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

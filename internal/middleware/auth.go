package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Skanda2852b/payrollmanagement/internal/apierror"
	"github.com/Skanda2852b/payrollmanagement/internal/policy"
	"github.com/Skanda2852b/payrollmanagement/internal/token"
)

const (
	IdentityKey = "identity"

	// TokenCookie is the HTTP-only cookie carrying the identity token.
	TokenCookie = "token"
)

// Auth resolves the caller's identity on every protected route. The token is
// read from the `token` cookie, falling back to an Authorization: Bearer
// header for non-browser clients. Every failure — missing token, bad
// signature, expiry, unknown user — yields the same 401.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Unauthorized"))
			return
		}
		identity := tokens.Verify(c.Request.Context(), raw)
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Unauthorized"))
			return
		}
		c.Set(IdentityKey, identity)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if v, err := c.Cookie(TokenCookie); err == nil && v != "" {
		return v
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// GetIdentity is a helper to retrieve the typed identity from the Gin context.
func GetIdentity(c *gin.Context) *policy.Identity {
	identity, _ := c.MustGet(IdentityKey).(*policy.Identity)
	return identity
}

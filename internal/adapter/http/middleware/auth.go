package middleware

import (
	"net/http"
	"strings"

	"carmasters/internal/infrastructure/auth"
	"carmasters/pkg"

	"github.com/gin-gonic/gin"
)

const ClaimsKey = "authClaims"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)

// AuthRequired verifies the Bearer token and stores the session claims on the
// context for downstream handlers.
func AuthRequired(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		claims, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

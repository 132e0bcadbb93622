// README: JWT auth middleware and role guards.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foodbridge/internal/infra"
	"foodbridge/internal/types"
)

const principalKey = "auth.principal"

type authErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Auth verifies the bearer token and stores the caller's principal on the
// request context. Suspended accounts are rejected here, before any handler
// runs.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortAuth(c, http.StatusUnauthorized, "Not authorized, no token")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		principal, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			abortAuth(c, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}
		if principal.Status == "suspended" {
			abortAuth(c, http.StatusForbidden, "Account suspended")
			return
		}

		c.Set(principalKey, *principal)
		c.Next()
	}
}

// RequireRoles allows only the named roles through. Must run after Auth.
func RequireRoles(roles ...types.Role) gin.HandlerFunc {
	allowed := make(map[types.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		p, ok := CallerPrincipal(c)
		if !ok {
			abortAuth(c, http.StatusUnauthorized, "Not authorized, no token")
			return
		}
		if !allowed[p.Role] {
			abortAuth(c, http.StatusForbidden, "Access denied")
			return
		}
		c.Next()
	}
}

// CallerPrincipal returns the authenticated principal set by Auth.
func CallerPrincipal(c *gin.Context) (types.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return types.Principal{}, false
	}
	p, ok := v.(types.Principal)
	return p, ok
}

func abortAuth(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, authErrorBody{Success: false, Message: msg})
}

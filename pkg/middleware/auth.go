package middleware

import (
	"backend_chiccit/pkg/config"
	"backend_chiccit/pkg/utils"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminLookup reports whether the given user holds an admin role record.
// Injected so the guard can be tested without a live database.
type AdminLookup func(userID string) (bool, error)

// RequireAdmin gates the seeding endpoint. Checks, in order: the environment
// kill switch, the bearer token, and the caller's admin role. All checks are
// read-only and evaluated once per request.
func RequireAdmin(isAdmin AdminLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The whole endpoint is disabled in production, no matter who asks.
		if config.IsProduction() {
			utils.ForbiddenResponse(c, "Seeder disabled in production")
			c.Abort()
			return
		}

		token := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}

		if token == "" {
			utils.UnauthorizedResponse(c, "Access denied. No token provided.")
			c.Abort()
			return
		}

		// The service-role credential carries full privileges.
		if config.AppConfig.ServiceRoleKey != "" && token == config.AppConfig.ServiceRoleKey {
			c.Next()
			return
		}

		claims, err := utils.VerifyToken(token)
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid token.")
			c.Abort()
			return
		}

		ok, err := isAdmin(claims.ID)
		if err != nil {
			log.Printf("Error checking admin role for user %s: %v", claims.ID, err)
			utils.ForbiddenResponse(c, "Admin role required.")
			c.Abort()
			return
		}
		if !ok {
			utils.ForbiddenResponse(c, "Admin role required.")
			c.Abort()
			return
		}

		c.Set("userId", claims.ID)
		c.Next()
	}
}

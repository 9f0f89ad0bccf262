package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"example.com/travelagency/internal/models"
)

// PrincipalContextKey is the gin context key holding the authenticated
// principal.
const PrincipalContextKey = "principal"

// PrincipalLookup resolves a username against the configured user model.
type PrincipalLookup func(ctx context.Context, username string) (models.Principal, error)

// StaffAuth guards the back-office routes with basic credentials. The
// principal must verify its credential and hold back-office access.
func StaffAuth(lookup PrincipalLookup, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "credentials required",
			})
			c.Abort()
			return
		}

		principal, err := lookup(c.Request.Context(), username)
		if err != nil {
			log.WithField("username", username).Warn("Unknown admin user")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid credentials",
			})
			c.Abort()
			return
		}

		if !principal.VerifyCredential(password) {
			log.WithField("username", username).Warn("Bad admin credential")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid credentials",
			})
			c.Abort()
			return
		}

		if !principal.HasPermission("admin.access") {
			log.WithField("username", username).Warn("Admin access denied")
			c.JSON(http.StatusForbidden, gin.H{
				"error": "insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(PrincipalContextKey, principal)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"house_calculator/pkg"

	"github.com/gin-gonic/gin"
)

// The gateway in front of the service authenticates callers and forwards
// their identity in these headers.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
	RoleAdmin      = "admin"

	ctxUserID  = "user_id"
	ctxIsAdmin = "is_admin"
)

var errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing user identity", http.StatusUnauthorized)

// Identity copies the forwarded caller identity into the gin context.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(HeaderUserID)); id != "" {
			c.Set(ctxUserID, id)
		}
		role := strings.TrimSpace(c.GetHeader(HeaderUserRole))
		c.Set(ctxIsAdmin, strings.EqualFold(role, RoleAdmin))
		c.Next()
	}
}

// RequireUser rejects requests without a caller identity.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxIsAdmin)
}

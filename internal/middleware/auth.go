package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"tickethub/internal/domain"
)

const (
	userIDHeader   = "X-User-ID"
	userRoleHeader = "X-User-Role"

	principalKey = "principal"
)

// TrustedPrincipal extracts the identity placed on the request by the
// upstream auth service. No credential checks happen here: the gateway in
// front of this service is the trust boundary.
func TrustedPrincipal() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "message": "missing authenticated user"},
			)
			return
		}

		role := c.GetHeader(userRoleHeader)
		if role == "" {
			role = "user"
		}

		c.Set(principalKey, domain.Principal{UserID: userID, Role: role})

		c.Next()
	}
}

// Principal returns the identity stored by TrustedPrincipal.
func Principal(c *ginext.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}

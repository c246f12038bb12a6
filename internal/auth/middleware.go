package auth

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"inkwell/internal/user"

	"github.com/gin-gonic/gin"
)

const identityKey = "currentUser"

// Identity is the resolved requester attached to the gin context for the
// rest of the request.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  user.Role
}

func (id *Identity) IsAdmin() bool {
	return id != nil && id.Role == user.RoleAdmin
}

// CurrentUser returns the identity the gate attached, or nil for an
// anonymous request.
func CurrentUser(c *gin.Context) *Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	return v.(*Identity)
}

// Route sets matched by path prefix. Order matters: the auth-page check
// runs first, then login-required, then admin-required; the first match
// that redirects wins.
var (
	authRoutes      = []string{"/login", "/register"}
	protectedRoutes = []string{"/dashboard", "/admin"}
	adminRoutes     = []string{"/admin"}
)

func matchesAny(path string, routes []string) bool {
	for _, r := range routes {
		if strings.HasPrefix(path, r) {
			return true
		}
	}
	return false
}

// Gate resolves the session cookie into an identity and enforces the
// route-level access rules before any handler runs.
func Gate(svc *Service, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
			u, err := svc.ValidateSession(c.Request.Context(), token)
			switch {
			case err != nil:
				// Store trouble: treat as anonymous but keep the cookie,
				// the token may still be good once the store recovers.
				log.Printf("[auth] session lookup failed: %v", err)
			case u != nil:
				c.Set(identityKey, &Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
			default:
				ClearSessionCookie(c, secureCookies)
			}
		}

		path := c.Request.URL.Path
		ident := CurrentUser(c)

		if matchesAny(path, authRoutes) && ident != nil {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		if matchesAny(path, protectedRoutes) && ident == nil {
			c.Redirect(http.StatusFound, "/login?redirect="+url.QueryEscape(path))
			c.Abort()
			return
		}
		if matchesAny(path, adminRoutes) && !ident.IsAdmin() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

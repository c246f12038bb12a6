package auth

import (
	"net/http"
	"time"

	"inkwell/internal/user"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie that carries the bearer token.
const SessionCookieName = "session"

// SessionDuration is fixed at issuance; sessions are never renewed.
const SessionDuration = 7 * 24 * time.Hour

// Session is a login session. The row ID doubles as the bearer token
// presented in the cookie; there is no signature over it. Rows are never
// updated after creation.
type Session struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"size:36;index;not null"`
	User      user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

// SetSessionCookie issues the session cookie on the response.
func SetSessionCookie(c *gin.Context, token string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(SessionDuration.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie removes the session cookie from the client, so a dead
// token is not resubmitted on every request.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}

package api

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"inkwell/internal/auth"
	"inkwell/internal/config"

	"github.com/gin-gonic/gin"
)

// redirectError and redirectSuccess carry a human-readable message back to
// the page as a query parameter. Form actions never answer with a
// status-code error; the redirect is the whole response.
func redirectError(c *gin.Context, page, msg string) {
	c.Redirect(http.StatusFound, page+"?error="+url.QueryEscape(msg))
}

func redirectSuccess(c *gin.Context, page, msg string) {
	c.Redirect(http.StatusFound, page+"?success="+url.QueryEscape(msg))
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config, svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.PostForm("email"))
		password := c.PostForm("password")
		target := c.DefaultPostForm("redirect", "/dashboard")

		if email == "" || password == "" {
			redirectError(c, "/login", "Email and password are required")
			return
		}
		u, token, err := svc.Login(c.Request.Context(), email, password)
		if err != nil {
			log.Printf("[api] login failed: %v", err)
			redirectError(c, "/login", "An error occurred during login")
			return
		}
		if u == nil {
			redirectError(c, "/login", "Invalid email or password")
			return
		}
		auth.SetSessionCookie(c, token, cfg.CookieSecure)
		c.Redirect(http.StatusFound, target)
	}
}

// POST /api/auth/register
func RegisterHandler(cfg *config.Config, svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("name"))
		email := strings.TrimSpace(c.PostForm("email"))
		password := c.PostForm("password")
		confirm := c.PostForm("confirmPassword")

		if name == "" || email == "" || password == "" || confirm == "" {
			redirectError(c, "/register", "All fields are required")
			return
		}
		if password != confirm {
			redirectError(c, "/register", "Passwords do not match")
			return
		}
		if len(password) < 8 {
			redirectError(c, "/register", "Password must be at least 8 characters")
			return
		}
		_, token, err := svc.Register(c.Request.Context(), name, email, password)
		if errors.Is(err, auth.ErrEmailTaken) {
			redirectError(c, "/register", "Email already registered")
			return
		}
		if err != nil {
			log.Printf("[api] registration failed: %v", err)
			redirectError(c, "/register", "An error occurred during registration")
			return
		}
		auth.SetSessionCookie(c, token, cfg.CookieSecure)
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// POST /api/auth/logout
func LogoutHandler(cfg *config.Config, svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(auth.SessionCookieName); err == nil && token != "" {
			if err := svc.DeleteSession(c.Request.Context(), token); err != nil {
				log.Printf("[api] logout: session delete failed: %v", err)
			}
		}
		auth.ClearSessionCookie(c, cfg.CookieSecure)
		c.Redirect(http.StatusFound, "/")
	}
}

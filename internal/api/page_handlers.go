package api

import (
	"net/http"

	"inkwell/internal/auth"
	"inkwell/internal/post"

	"github.com/gin-gonic/gin"
)

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET / — the latest posts for the public home page.
func HomeHandler(svc *post.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.GetLatestPosts(c.Request.Context(), 5)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load posts"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"posts": posts})
	}
}

// GET /post/:id — a post with its comments.
func PostPageHandler(svc *post.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		p, err := svc.GetPostByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load post"}})
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Post not found"}})
			return
		}
		comments, err := svc.GetCommentsByPost(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load comments"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"post": p, "comments": comments})
	}
}

// The login and register pages only exist server-side so the gate can
// bounce already-authenticated visitors off them.
func LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "login", "error": c.Query("error"), "redirect": c.Query("redirect")})
	}
}

func RegisterPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"page": "register", "error": c.Query("error")})
	}
}

// GET /dashboard — the signed-in author's own posts. The gate guarantees
// an identity here.
func DashboardHandler(svc *post.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := auth.CurrentUser(c)
		posts, err := svc.GetPostsByAuthor(c.Request.Context(), ident.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load posts"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user":  gin.H{"id": ident.ID, "name": ident.Name, "email": ident.Email, "role": ident.Role},
			"posts": posts,
		})
	}
}

// GET /admin — user and comment management data. Admin-gated upstream.
func AdminPageHandler(authSvc *auth.Service, postSvc *post.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := authSvc.GetAllUsers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load users"}})
			return
		}
		comments, err := postSvc.GetAllComments(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load comments"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users, "comments": comments})
	}
}

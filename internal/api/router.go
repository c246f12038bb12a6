package api

import (
	"inkwell/internal/auth"
	"inkwell/internal/config"
	"inkwell/internal/post"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the whole route surface. The session gate runs on every
// request; the /api POST actions answer with redirects carrying a
// success/error message as a query parameter, per the site's form-driven
// design.
func SetupRouter(cfg *config.Config, authSvc *auth.Service, postSvc *post.Service) *gin.Engine {
	r := gin.Default()
	r.Use(auth.Gate(authSvc, cfg.CookieSecure))

	// Page-data routes. Rendering lives with the frontend; these expose
	// the reads each page needs.
	r.GET("/", HomeHandler(postSvc))
	r.GET("/post/:id", PostPageHandler(postSvc))
	r.GET("/login", LoginPageHandler())
	r.GET("/register", RegisterPageHandler())
	r.GET("/dashboard", DashboardHandler(postSvc))
	r.GET("/admin", AdminPageHandler(authSvc, postSvc))
	r.GET("/health", HealthHandler)

	api := r.Group("/api")
	{
		api.POST("/auth/login", LoginHandler(cfg, authSvc))
		api.POST("/auth/register", RegisterHandler(cfg, authSvc))
		api.POST("/auth/logout", LogoutHandler(cfg, authSvc))

		api.POST("/posts/create", CreatePostHandler(postSvc))
		api.POST("/posts/update", UpdatePostHandler(postSvc))
		api.POST("/posts/delete", DeletePostHandler(postSvc))

		api.POST("/comments/create", CreateCommentHandler(postSvc))
		api.POST("/comments/delete", DeleteCommentHandler(postSvc))

		api.POST("/admin/update-role", UpdateRoleHandler(authSvc))
		api.POST("/admin/delete-user", DeleteUserHandler(authSvc))
	}
	return r
}

package api

import (
	"log"

	"inkwell/internal/auth"
	"inkwell/internal/user"

	"github.com/gin-gonic/gin"
)

// POST /api/admin/update-role
func UpdateRoleHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := auth.CurrentUser(c)
		if !ident.IsAdmin() {
			redirectError(c, "/", "Unauthorized access")
			return
		}
		userID := c.PostForm("userId")
		newRole := c.PostForm("role")
		if userID == "" || newRole == "" {
			redirectError(c, "/admin", "Invalid data")
			return
		}
		if !user.ValidRole(newRole) {
			redirectError(c, "/admin", "Invalid role")
			return
		}
		if userID == ident.ID {
			redirectError(c, "/admin", "You cannot change your own role")
			return
		}
		role := user.Role(newRole)
		if _, err := svc.UpdateUser(c.Request.Context(), userID, auth.UserUpdate{Role: &role}); err != nil {
			log.Printf("[api] update role failed: %v", err)
			redirectError(c, "/admin", "Failed to update user role")
			return
		}
		redirectSuccess(c, "/admin", "User role updated to "+newRole)
	}
}

// POST /api/admin/delete-user
func DeleteUserHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := auth.CurrentUser(c)
		if !ident.IsAdmin() {
			redirectError(c, "/", "Unauthorized access")
			return
		}
		userID := c.PostForm("userId")
		if userID == "" {
			redirectError(c, "/admin", "Invalid user ID")
			return
		}
		if userID == ident.ID {
			redirectError(c, "/admin", "You cannot delete yourself")
			return
		}
		if err := svc.DeleteUser(c.Request.Context(), userID); err != nil {
			log.Printf("[api] delete user failed: %v", err)
			redirectError(c, "/admin", "Failed to delete user")
			return
		}
		redirectSuccess(c, "/admin", "User and all their data deleted successfully")
	}
}

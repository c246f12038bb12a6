package api

import (
	"log"
	"strings"

	"inkwell/internal/auth"
	"inkwell/internal/post"

	"github.com/gin-gonic/gin"
)

// POST /api/posts/create
func CreatePostHandler(svc *post.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := auth.CurrentUser(c)
		if ident == nil {
			redirectError(c, "/login", "Please log in to create a post")
			return
		}
		title := strings.TrimSpace(c.PostForm("title"))
		content := strings.TrimSpace(c.PostForm("content"))
		excerpt := strings.TrimSpace(c.PostForm("excerpt"))

		if title == "" || content == "" {
			redirectError(c, "/dashboard/new", "Title and content are required")
			return
		}
		if _, err := svc.CreatePost(c.Request.Context(), title, content, excerpt, ident.ID); err != nil {
			log.Printf("[api] create post failed: %v", err)
			redirectError(c, "/dashboard/new", "Failed to create post")
			return
		}
		redirectSuccess(c, "/dashboard", "Post created successfully!")
	}
}

// POST /api/posts/update
func UpdatePostHandler(svc *post.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := auth.CurrentUser(c)
		if ident == nil {
			redirectError(c, "/login", "Please log in to edit posts")
			return
		}
		postID := c.PostForm("postId")
		title := strings.TrimSpace(c.PostForm("title"))
		content := strings.TrimSpace(c.PostForm("content"))
		excerpt := strings.TrimSpace(c.PostForm("excerpt"))

		if postID == "" || title == "" || content == "" {
			redirectError(c, "/dashboard", "Invalid post data")
			return
		}
		existing, err := svc.GetPostByID(c.Request.Context(), postID)
		if err != nil {
			log.Printf("[api] update post lookup failed: %v", err)
			redirectError(c, "/dashboard", "Failed to update post")
			return
		}
		if existing == nil {
			redirectError(c, "/dashboard", "Post not found")
			return
		}
		if existing.AuthorID != ident.ID && !ident.IsAdmin() {
			redirectError(c, "/dashboard", "You can only edit your own posts")
			return
		}
		upd := post.PostUpdate{Title: &title, Content: &content}
		if excerpt != "" {
			upd.Excerpt = &excerpt
		}
		if _, err := svc.UpdatePost(c.Request.Context(), postID, upd); err != nil {
			log.Printf("[api] update post failed: %v", err)
			redirectError(c, "/dashboard", "Failed to update post")
			return
		}
		redirectSuccess(c, "/dashboard", "Post updated successfully!")
	}
}

// POST /api/posts/delete
func DeletePostHandler(svc *post.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := auth.CurrentUser(c)
		if ident == nil {
			redirectError(c, "/login", "Please log in to delete posts")
			return
		}
		postID := c.PostForm("postId")
		if postID == "" {
			redirectError(c, "/dashboard", "Invalid post")
			return
		}
		existing, err := svc.GetPostByID(c.Request.Context(), postID)
		if err != nil {
			log.Printf("[api] delete post lookup failed: %v", err)
			redirectError(c, "/dashboard", "Failed to delete post")
			return
		}
		if existing == nil {
			redirectError(c, "/dashboard", "Post not found")
			return
		}
		if existing.AuthorID != ident.ID && !ident.IsAdmin() {
			redirectError(c, "/dashboard", "You can only delete your own posts")
			return
		}
		if err := svc.DeletePost(c.Request.Context(), postID); err != nil {
			log.Printf("[api] delete post failed: %v", err)
			redirectError(c, "/dashboard", "Failed to delete post")
			return
		}
		redirectSuccess(c, "/dashboard", "Post deleted successfully!")
	}
}

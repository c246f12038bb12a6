package api

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"inkwell/internal/auth"
	"inkwell/internal/post"

	"github.com/gin-gonic/gin"
)

// Comment actions bounce back to the post page, anchored on the comment
// list.
func redirectToPost(c *gin.Context, postID, key, msg string) {
	c.Redirect(http.StatusFound, "/post/"+postID+"?"+key+"="+url.QueryEscape(msg)+"#comments")
}

// POST /api/comments/create
func CreateCommentHandler(svc *post.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := auth.CurrentUser(c)
		if ident == nil {
			redirectError(c, "/login", "Please log in to comment")
			return
		}
		postID := c.PostForm("postId")
		content := strings.TrimSpace(c.PostForm("content"))
		if postID == "" || content == "" {
			redirectToPost(c, postID, "error", "Comment content is required")
			return
		}
		p, err := svc.GetPostByID(c.Request.Context(), postID)
		if err != nil {
			log.Printf("[api] comment post lookup failed: %v", err)
			redirectError(c, "/", "Failed to post comment")
			return
		}
		if p == nil {
			redirectError(c, "/", "Post not found")
			return
		}
		if _, err := svc.CreateComment(c.Request.Context(), content, postID, ident.ID); err != nil {
			log.Printf("[api] create comment failed: %v", err)
			redirectError(c, "/", "Failed to post comment")
			return
		}
		redirectToPost(c, postID, "success", "Comment posted!")
	}
}

// POST /api/comments/delete
func DeleteCommentHandler(svc *post.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := auth.CurrentUser(c)
		if ident == nil {
			redirectError(c, "/login", "Please log in")
			return
		}
		commentID := c.PostForm("commentId")
		postID := c.PostForm("postId")
		if commentID == "" || postID == "" {
			redirectToPost(c, postID, "error", "Invalid comment")
			return
		}
		cm, err := svc.GetCommentByID(c.Request.Context(), commentID)
		if err != nil {
			log.Printf("[api] delete comment lookup failed: %v", err)
			redirectError(c, "/", "Failed to delete comment")
			return
		}
		if cm == nil {
			redirectToPost(c, postID, "error", "Comment not found")
			return
		}
		if cm.UserID != ident.ID && !ident.IsAdmin() {
			redirectToPost(c, postID, "error", "You can only delete your own comments")
			return
		}
		if err := svc.DeleteComment(c.Request.Context(), commentID); err != nil {
			log.Printf("[api] delete comment failed: %v", err)
			redirectError(c, "/", "Failed to delete comment")
			return
		}
		redirectToPost(c, postID, "success", "Comment deleted")
	}
}

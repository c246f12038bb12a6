package post

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"inkwell/internal/user"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&user.User{}, &Post{}, &Comment{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return conn
}

func seedAuthor(t *testing.T, conn *gorm.DB, email string) user.User {
	t.Helper()
	u := user.User{
		ID:           uuid.NewString(),
		Name:         "Author",
		Email:        email,
		PasswordHash: "hash",
		Role:         user.RoleUser,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := conn.Create(&u).Error; err != nil {
		t.Fatalf("seed author: %v", err)
	}
	return u
}

func TestCreatePost_DerivesExcerpt(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewService(conn)
	ctx := context.Background()
	author := seedAuthor(t, conn, "a@x.com")

	p, err := svc.CreatePost(ctx, "Hi", "<p>Hello   world</p>", "", author.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Excerpt != "Hello world" {
		t.Errorf("expected derived excerpt, got %q", p.Excerpt)
	}

	// A supplied excerpt wins over derivation.
	p2, err := svc.CreatePost(ctx, "Hi", "<p>Hello</p>", "Custom excerpt", author.ID)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p2.Excerpt != "Custom excerpt" {
		t.Errorf("expected supplied excerpt, got %q", p2.Excerpt)
	}
}

func TestGetPostByID_WithAuthorAndAbsent(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewService(conn)
	ctx := context.Background()
	author := seedAuthor(t, conn, "a@x.com")

	p, _ := svc.CreatePost(ctx, "Hi", "content", "", author.ID)
	got, err := svc.GetPostByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Author.Email != "a@x.com" {
		t.Errorf("expected post with preloaded author, got %+v", got)
	}

	if got, err := svc.GetPostByID(ctx, "no-such-post"); err != nil || got != nil {
		t.Errorf("absent post: expected (nil, nil), got (%v, %v)", got, err)
	}
}

func TestGetLatestPosts_OrderAndLimit(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewService(conn)
	ctx := context.Background()
	author := seedAuthor(t, conn, "a@x.com")

	base := time.Now()
	for i := 0; i < 7; i++ {
		step := time.Duration(i) * time.Minute
		svc.now = func() time.Time { return base.Add(step) }
		if _, err := svc.CreatePost(ctx, fmt.Sprintf("Post %d", i), "content", "", author.ID); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	posts, err := svc.GetLatestPosts(ctx, 5)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(posts) != 5 {
		t.Fatalf("expected 5 posts, got %d", len(posts))
	}
	if posts[0].Title != "Post 6" {
		t.Errorf("expected newest first, got %q", posts[0].Title)
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].CreatedAt.After(posts[i-1].CreatedAt) {
			t.Errorf("posts out of order at %d", i)
		}
	}
}

func TestUpdatePost_ContentChangeRederivesExcerpt(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewService(conn)
	ctx := context.Background()
	author := seedAuthor(t, conn, "a@x.com")

	p, _ := svc.CreatePost(ctx, "Hi", "<p>Old content</p>", "", author.ID)

	content := "<p>Brand   new</p>"
	got, err := svc.UpdatePost(ctx, p.ID, PostUpdate{Content: &content})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Excerpt != "Brand new" {
		t.Errorf("expected re-derived excerpt, got %q", got.Excerpt)
	}
	if got.Title != "Hi" {
		t.Errorf("title should be untouched, got %q", got.Title)
	}

	if got, err := svc.UpdatePost(ctx, "no-such-post", PostUpdate{Content: &content}); err != nil || got != nil {
		t.Errorf("absent post: expected (nil, nil), got (%v, %v)", got, err)
	}
}

func TestDeletePost_CascadesComments(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewService(conn)
	ctx := context.Background()
	author := seedAuthor(t, conn, "a@x.com")

	p, _ := svc.CreatePost(ctx, "Hi", "content", "", author.ID)
	cm, err := svc.CreateComment(ctx, "First!", p.ID, author.ID)
	if err != nil {
		t.Fatalf("comment: %v", err)
	}

	if err := svc.DeletePost(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var count int64
	conn.Model(&Comment{}).Where("id = ?", cm.ID).Count(&count)
	if count != 0 {
		t.Errorf("comment should cascade with its post")
	}
}

func TestComments_ByPostAndAll(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewService(conn)
	ctx := context.Background()
	author := seedAuthor(t, conn, "a@x.com")
	commenter := seedAuthor(t, conn, "b@x.com")

	p1, _ := svc.CreatePost(ctx, "One", "content", "", author.ID)
	p2, _ := svc.CreatePost(ctx, "Two", "content", "", author.ID)
	svc.CreateComment(ctx, "on one", p1.ID, commenter.ID)
	svc.CreateComment(ctx, "on two", p2.ID, commenter.ID)

	comments, err := svc.GetCommentsByPost(ctx, p1.ID)
	if err != nil {
		t.Fatalf("by post: %v", err)
	}
	if len(comments) != 1 || comments[0].Content != "on one" {
		t.Errorf("unexpected comments: %+v", comments)
	}
	if comments[0].User.Email != "b@x.com" {
		t.Errorf("expected preloaded commenter, got %+v", comments[0].User)
	}

	all, err := svc.GetAllComments(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(all))
	}
	for _, cm := range all {
		if cm.Post.Title == "" {
			t.Errorf("admin view should preload the post, got %+v", cm.Post)
		}
	}
}

func TestGetPostsByAuthor(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewService(conn)
	ctx := context.Background()
	a := seedAuthor(t, conn, "a@x.com")
	b := seedAuthor(t, conn, "b@x.com")

	svc.CreatePost(ctx, "Mine", "content", "", a.ID)
	svc.CreatePost(ctx, "Theirs", "content", "", b.ID)

	posts, err := svc.GetPostsByAuthor(ctx, a.ID)
	if err != nil {
		t.Fatalf("by author: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Mine" {
		t.Errorf("unexpected posts: %+v", posts)
	}
}

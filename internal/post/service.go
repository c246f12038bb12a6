package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is the content layer: posts and comments over the injected store.
// Absent rows come back as (nil, nil), same convention as the auth service.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// CreatePost stores a new post for authorID. An empty excerpt is derived
// from the content.
func (s *Service) CreatePost(ctx context.Context, title, content, excerpt, authorID string) (*Post, error) {
	if excerpt == "" {
		excerpt = GenerateExcerpt(content, DefaultExcerptLength)
	}
	now := s.now()
	p := Post{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Excerpt:   excerpt,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) GetPostByID(ctx context.Context, id string) (*Post, error) {
	var p Post
	err := s.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) GetLatestPosts(ctx context.Context, limit int) ([]Post, error) {
	if limit <= 0 {
		limit = 5
	}
	var posts []Post
	err := s.db.WithContext(ctx).Preload("Author").
		Order("created_at DESC").Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Service) GetAllPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := s.db.WithContext(ctx).Preload("Author").
		Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Service) GetPostsByAuthor(ctx context.Context, authorID string) ([]Post, error) {
	var posts []Post
	err := s.db.WithContext(ctx).Where("author_id = ?", authorID).
		Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// PostUpdate carries the optional fields of UpdatePost.
type PostUpdate struct {
	Title   *string
	Content *string
	Excerpt *string
}

// UpdatePost applies the supplied fields. A content change re-derives the
// excerpt unless one was supplied alongside it.
func (s *Service) UpdatePost(ctx context.Context, id string, upd PostUpdate) (*Post, error) {
	var p Post
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
		if upd.Excerpt != nil && *upd.Excerpt != "" {
			p.Excerpt = *upd.Excerpt
		} else {
			p.Excerpt = GenerateExcerpt(p.Content, DefaultExcerptLength)
		}
	}
	p.UpdatedAt = s.now()
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePost removes a post; its comments cascade with it. Absent posts
// are not an error.
func (s *Service) DeletePost(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&Post{}).Error
}

func (s *Service) CreateComment(ctx context.Context, content, postID, userID string) (*Comment, error) {
	cm := Comment{
		ID:        uuid.NewString(),
		Content:   content,
		PostID:    postID,
		UserID:    userID,
		CreatedAt: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&cm).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

func (s *Service) GetCommentByID(ctx context.Context, id string) (*Comment, error) {
	var cm Comment
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&cm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

func (s *Service) GetCommentsByPost(ctx context.Context, postID string) ([]Comment, error) {
	var comments []Comment
	err := s.db.WithContext(ctx).Preload("User").Where("post_id = ?", postID).
		Order("created_at DESC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// GetAllComments is the admin view: every comment with its commenter and
// the post it belongs to.
func (s *Service) GetAllComments(ctx context.Context) ([]Comment, error) {
	var comments []Comment
	err := s.db.WithContext(ctx).Preload("User").Preload("Post").
		Order("created_at DESC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Service) DeleteComment(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&Comment{}).Error
}

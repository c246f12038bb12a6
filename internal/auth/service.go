package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"inkwell/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrEmailTaken is returned when a registration or profile update collides
// with an existing account's email.
var ErrEmailTaken = errors.New("email already registered")

// Service implements the account and session operations. Lookups that find
// nothing return (nil, nil); an error always means the store misbehaved.
type Service struct {
	db *gorm.DB

	// now is swapped out in tests to simulate clock movement.
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// UserUpdate carries the optional fields of UpdateUser. Nil means "leave
// unchanged".
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Role     *user.Role
}

func (s *Service) CreateUser(ctx context.Context, name, email, password string, role user.Role) (*user.User, error) {
	if role == "" {
		role = user.RoleUser
	}
	hash, err := user.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := s.now()
	u := user.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) GetAllUsers(ctx context.Context) ([]user.User, error) {
	var users []user.User
	if err := s.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser applies the supplied fields only. UpdatedAt is refreshed on
// every call; a supplied password is re-hashed. An absent user yields
// (nil, nil).
func (s *Service) UpdateUser(ctx context.Context, id string, upd UserUpdate) (*user.User, error) {
	var u user.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = strings.ToLower(*upd.Email)
	}
	if upd.Password != nil {
		hash, err := user.HashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	u.UpdatedAt = s.now()
	if err := s.db.WithContext(ctx).Save(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes a user. Posts, comments and sessions go with it via
// the cascade constraints. Deleting an absent user succeeds.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&user.User{}).Error
}

// CreateSession issues a fresh bearer token for userID, valid for
// SessionDuration from now.
func (s *Service) CreateSession(ctx context.Context, userID string) (string, error) {
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: s.now().Add(SessionDuration),
	}
	if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return "", err
	}
	return sess.ID, nil
}

// ValidateSession resolves a bearer token to its owning user. An unknown
// token, an expired one, or one whose user has since been deleted all
// return (nil, nil). Expired rows are left in place; only the cleanup
// sweep removes them.
func (s *Service) ValidateSession(ctx context.Context, token string) (*user.User, error) {
	var sess Session
	err := s.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", token, s.now()).
		First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.GetUserByID(ctx, sess.UserID)
}

// DeleteSession revokes a token. Unknown tokens are not an error.
func (s *Service) DeleteSession(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Where("id = ?", token).Delete(&Session{}).Error
}

// CleanupExpiredSessions bulk-deletes sessions whose expiry is strictly in
// the past and reports how many went. Callers schedule it; the service
// never runs it on its own.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at < ?", s.now()).Delete(&Session{})
	return res.RowsAffected, res.Error
}

// Login verifies credentials and issues a session. Unknown email and wrong
// password both come back as (nil, "", nil); callers get no signal to
// enumerate accounts with.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	u, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", nil
	}
	if err := user.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, "", nil
	}
	token, err := s.CreateSession(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Register creates an account and its first session in one transaction, so
// a crash between the two writes cannot leave a half-registered user. Two
// concurrent registrations of the same email race down to the unique
// constraint, which rejects the loser as ErrEmailTaken.
func (s *Service) Register(ctx context.Context, name, email, password string) (*user.User, string, error) {
	hash, err := user.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	now := s.now()
	u := user.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		Role:         user.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		ExpiresAt: now.Add(SessionDuration),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&user.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		if err := tx.Create(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return err
		}
		return tx.Create(&sess).Error
	})
	if err != nil {
		return nil, "", err
	}
	return &u, sess.ID, nil
}

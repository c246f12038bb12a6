package db

import (
	"log"

	"inkwell/internal/auth"
	"inkwell/internal/post"
	"inkwell/internal/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and migrates the schema. The returned handle
// is the only one the process uses; callers pass it to the services rather
// than reaching for a package-level singleton.
func Open(databaseURL string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := Migrate(conn); err != nil {
		return nil, err
	}
	log.Printf("[db] connected and migrated")
	return conn, nil
}

// Migrate creates or updates the four tables. Foreign keys carry
// ON DELETE CASCADE, so removing a user takes their posts, comments and
// sessions along, and removing a post takes its comments.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&user.User{},
		&auth.Session{},
		&post.Post{},
		&post.Comment{},
	)
}

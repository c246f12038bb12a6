package main

import (
	"context"
	"log"
	"time"

	"inkwell/internal/api"
	"inkwell/internal/auth"
	"inkwell/internal/config"
	"inkwell/internal/db"
	"inkwell/internal/post"
	"inkwell/internal/user"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] config error: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[main] db init error: %v", err)
	}

	authSvc := auth.NewService(conn)
	postSvc := post.NewService(conn)

	if err := seedAdmin(authSvc, cfg); err != nil {
		log.Fatalf("[main] admin seed error: %v", err)
	}

	go sessionSweeper(authSvc)

	r := api.SetupRouter(cfg, authSvc, postSvc)
	log.Printf("[main] starting server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[main] server error: %v", err)
	}
}

// seedAdmin makes sure an admin account exists when the seed pair is
// configured. It runs once at startup and never overwrites an existing
// account.
func seedAdmin(svc *auth.Service, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}
	ctx := context.Background()
	existing, err := svc.GetUserByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	u, err := svc.CreateUser(ctx, "Admin", cfg.AdminEmail, cfg.AdminPassword, user.RoleAdmin)
	if err != nil {
		return err
	}
	log.Printf("[main] admin user created: %s", u.Email)
	return nil
}

// sessionSweeper runs the expired-session cleanup once an hour. The auth
// service only exposes the sweep; scheduling it is this process's job.
func sessionSweeper(svc *auth.Service) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		n, err := svc.CleanupExpiredSessions(context.Background())
		if err != nil {
			log.Printf("[main] session cleanup failed: %v", err)
			continue
		}
		if n > 0 {
			log.Printf("[main] session cleanup removed %d expired sessions", n)
		}
	}
}

package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ops-backend/models"
	"ops-backend/pkg/password"
	"ops-backend/repository"
)

type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// SeedAdmin creates the Admin user unless a user with that username already exists.
func SeedAdmin(ctx context.Context, users UserStore, username, plain string, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	existing, err := users.FindByUsername(ctx, username)
	if err == nil {
		log.Info("admin user already exists, skipping seed", zap.String("username", existing.Username))
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("seed admin: %w", err)
	}

	hashed, err := password.HashPassword(plain)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	admin := &models.User{
		Username:     username,
		Password:     hashed,
		Name:         "Administrator",
		Role:         models.RoleAdmin,
		Skillset:     []string{},
		CurrentTasks: []string{},
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info("admin user created", zap.String("username", username), zap.String("id", admin.ID))
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"ops-backend/models"
	"ops-backend/pkg/password"
	"ops-backend/repository"
)

type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
}

type AuthService struct {
	users  UserStore
	tokens TokenIssuer
}

func NewAuthService(users UserStore, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, payload models.UserRegisterPayload) (*models.User, error) {
	if _, err := s.users.FindByUsername(ctx, payload.Username); err == nil {
		return nil, fmt.Errorf("username %q already exists: %w", payload.Username, ErrConflict)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := password.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     payload.Username,
		Password:     hashed,
		Name:         payload.Name,
		Role:         payload.Role,
		Email:        payload.Email,
		Contact:      payload.Contact,
		Skillset:     payload.Skillset,
		CurrentTasks: []string{},
	}
	if user.Skillset == nil {
		user.Skillset = []string{}
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, storeErr("user", err)
	}
	return user, nil
}

// Login checks the credentials and issues a token. Unknown user and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, username, plain string) (string, *models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !password.CheckPasswordHash(plain, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

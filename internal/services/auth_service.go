package services

import (
	"context"
	"errors"
	"fmt"

	"starwars_api/internal/logger"
	"starwars_api/internal/models"
	"starwars_api/internal/repositories"
	"starwars_api/internal/utils"
)

type AuthService struct {
	users  UserStore
	tokens *utils.TokenManager
}

func NewAuthService(users UserStore, tokens *utils.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=120"`
	Username  string `json:"username" binding:"required,min=3,max=80"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"max=80"`
	LastName  string `json:"last_name" binding:"max=80"`
}

// Register hashes the password, stores an active user and issues an access
// token. Duplicate emails or usernames surface as repositories.ErrAlreadyExists.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := models.NewUser(req.Email, req.Username, hash)
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Prepare()

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}

	logger.Auth().WithField("user_id", user.ID).Info("user registered")
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, models.NormalizeEmail(email))
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := utils.VerifyPassword(user.Password, password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("verify password: %w", err)
	}
	if !user.IsActive {
		return nil, "", ErrUserInactive
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

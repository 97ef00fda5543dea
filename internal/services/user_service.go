package services

import (
	"context"
	"fmt"
	"strings"

	"starwars_api/internal/models"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty" binding:"omitempty,min=3,max=80"`
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,max=80"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,max=80"`
}

// UpdateProfile edits the profile of an active user. Deactivated users keep
// read access until their token expires but can no longer change anything.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, fmt.Errorf("%w: username cannot be blank", ErrInvalidInput)
		}
		user.Username = username
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	user.Prepare()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate keeps the user and its favorites but blocks logins and new
// favorites.
func (s *UserService) Deactivate(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsActive = false
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

package services

import (
	"context"

	"github.com/ryan-hugo/cliq-cli/internal/client/api"
	"github.com/ryan-hugo/cliq-cli/internal/client/models"
)

// UpdateProfileRequest is the profile-edit payload.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// ChangePasswordRequest carries the password change pair.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// Users wraps the profile, stats, and dashboard endpoints.
type Users struct {
	c *api.Client
}

func NewUsers(c *api.Client) *Users {
	return &Users{c: c}
}

func (s *Users) Profile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := s.c.Get(ctx, "/users/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile returns the canonical record the server stored. Callers
// feed it to the auth controller's UpdateUser to refresh the cached copy.
func (s *Users) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	var out models.User
	if err := s.c.Put(ctx, "/users/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Users) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	if err := checkPayload(req); err != nil {
		return err
	}
	return s.c.Put(ctx, "/users/change-password", req, nil)
}

func (s *Users) Stats(ctx context.Context) (*models.UserStats, error) {
	var out models.UserStats
	if err := s.c.Get(ctx, "/users/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Users) Dashboard(ctx context.Context) (*models.DashboardData, error) {
	var out models.DashboardData
	if err := s.c.Get(ctx, "/users/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package profile

import (
	"context"
)

type ProfileResponse struct {
	ID       string   `json:"id"`
	UserID   string   `json:"user_id"`
	FullName *string  `json:"full_name"`
	Email    string   `json:"email"`
	IsActive bool     `json:"is_active"`
	Roles    []string `json:"roles"`
}

type AssignRoleRequest struct {
	Role string `json:"role"`
}

type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

type Service interface {
	List(ctx context.Context) ([]ProfileResponse, error)
	AssignRole(ctx context.Context, userID string, role string) (ProfileResponse, error)
	RemoveRole(ctx context.Context, userID string, role string) (ProfileResponse, error)
	SetActive(ctx context.Context, userID string, active bool) (ProfileResponse, error)
}

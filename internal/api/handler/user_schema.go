package handler

import (
	"time"

	"github.com/adboard/listings-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=4,max=128"`
	Group    string `json:"group"    validate:"omitempty,oneof=user admin root"`
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=64"`
	Password *string `json:"password" validate:"omitempty,min=4,max=128"`
	Group    *string `json:"group"    validate:"omitempty,oneof=user admin root"`
}

// userResponse is the public view of an account. The password hash never
// leaves the service.
type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Group     string    `json:"group"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Group:     u.Group,
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}

package response

import (
	"time"

	"vehicle-rental/internal/data/entity"
)

type AuthResponse struct {
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// UserResponse is the sanitized user view: never carries the password hash.
type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// Helper converter
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

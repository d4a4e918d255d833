package response

import (
	"time"

	"campus-booking/internal/data/entity"
)

type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Society string `json:"society"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:      user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
		Society: user.Society,
	}
}

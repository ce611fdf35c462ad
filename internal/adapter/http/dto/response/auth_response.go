package response

import "carmasters/internal/domain/entities"

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Nombre    string `json:"nombre"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Nombre:    u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

type TokenResponse struct {
	Token string `json:"token"`
}

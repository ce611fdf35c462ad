package entities

// User is an admin-panel account (users table). PasswordHash is a bcrypt hash
// and is never serialized.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"nombre"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
}

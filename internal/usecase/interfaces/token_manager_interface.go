package interfaces

import "carmasters/internal/domain/entities"

// ITokenManager signs session tokens for the admin panel.
type ITokenManager interface {
	Sign(user entities.User) (string, error)
}

package interfaces

import (
	"context"

	"carmasters/internal/domain/entities"
)

// IUserRepository abstracts SQL persistence for admin accounts.
type IUserRepository interface {
	Create(ctx context.Context, username, passwordHash, name string) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
	GetByID(ctx context.Context, id int64) (entities.User, error)
}

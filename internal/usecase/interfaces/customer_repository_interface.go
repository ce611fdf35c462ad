package interfaces

import (
	"context"

	"carmasters/internal/domain/entities"
)

// ICustomerRepository abstracts SQL persistence for Customer. Reads return a
// zero-value entity with a nil error when the row is absent; the use case
// turns that into its not-found sentinel.
type ICustomerRepository interface {
	Create(ctx context.Context, name, phone, email string) (entities.Customer, error)
	GetByID(ctx context.Context, id int64) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, id int64, patch entities.CustomerPatch) (entities.Customer, error)
	Delete(ctx context.Context, id int64) error
}

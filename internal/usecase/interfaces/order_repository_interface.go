package interfaces

import (
	"context"

	"carmasters/internal/domain/entities"
)

// IOrderRepository abstracts SQL persistence for Order.
//
// The lifecycle manager must be able to:
//   - insert an order with its serialized image list and derived balance
//   - patch the tracking code after the QR artifact exists (create-then-patch)
//   - apply coalesce updates and then recompute saldo from the stored
//     total/anticipo in one statement
//   - replace the serialized image list (read-modify-write lives in the
//     use case)
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (int64, error)
	GetByID(ctx context.Context, id int64) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, id int64, patch entities.OrderPatch) error
	RecomputeBalance(ctx context.Context, id int64) error
	SetImages(ctx context.Context, id int64, images []string) error
	SetTrackingCode(ctx context.Context, id int64, path string) error
}

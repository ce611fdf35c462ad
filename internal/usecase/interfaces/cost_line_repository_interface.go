package interfaces

import (
	"context"

	"carmasters/internal/domain/entities"
)

// ICostLineRepository abstracts SQL persistence for per-order cost lines.
type ICostLineRepository interface {
	Create(ctx context.Context, line entities.CostLine) (entities.CostLine, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]entities.CostLine, error)
}

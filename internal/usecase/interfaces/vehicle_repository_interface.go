package interfaces

import (
	"context"

	"carmasters/internal/domain/entities"
)

// IVehicleRepository abstracts SQL persistence for Vehicle.
type IVehicleRepository interface {
	Create(ctx context.Context, customerID int64, make, model, plate string) (entities.Vehicle, error)
	GetByID(ctx context.Context, id int64) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	Update(ctx context.Context, id int64, patch entities.VehiclePatch) (entities.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

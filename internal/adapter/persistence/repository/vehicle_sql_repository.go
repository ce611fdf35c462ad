package repository

import (
	"context"

	"carmasters/internal/domain/entities"
	"carmasters/internal/infrastructure/database"
	"carmasters/internal/usecase/interfaces"
)

// VehicleSQLRepository persists Vehicle rows through the storage adapter.
type VehicleSQLRepository struct {
	store database.Store
}

var _ interfaces.IVehicleRepository = (*VehicleSQLRepository)(nil)

func NewVehicleSQLRepository(store database.Store) *VehicleSQLRepository {
	return &VehicleSQLRepository{store: store}
}

func (r *VehicleSQLRepository) Create(ctx context.Context, customerID int64, make, model, plate string) (entities.Vehicle, error) {
	res, err := r.store.Execute(ctx,
		"INSERT INTO vehiculos (cliente_id, marca, modelo, placas) VALUES (?,?,?,?)",
		customerID, nullIfEmpty(make), nullIfEmpty(model), nullIfEmpty(plate))
	if err != nil {
		return entities.Vehicle{}, err
	}
	return r.GetByID(ctx, res.LastInsertID)
}

func (r *VehicleSQLRepository) GetByID(ctx context.Context, id int64) (entities.Vehicle, error) {
	row, err := r.store.QueryOne(ctx, "SELECT * FROM vehiculos WHERE id = ?", id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if row == nil {
		return entities.Vehicle{}, nil
	}
	return mapVehicle(row), nil
}

func (r *VehicleSQLRepository) List(ctx context.Context) ([]entities.Vehicle, error) {
	rows, err := r.store.QueryAll(ctx, "SELECT * FROM vehiculos ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	out := make([]entities.Vehicle, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapVehicle(row))
	}
	return out, nil
}

func (r *VehicleSQLRepository) Update(ctx context.Context, id int64, patch entities.VehiclePatch) (entities.Vehicle, error) {
	_, err := r.store.Execute(ctx,
		`UPDATE vehiculos
		 SET marca = COALESCE(?, marca),
		     modelo = COALESCE(?, modelo),
		     placas = COALESCE(?, placas)
		 WHERE id = ?`,
		patch.Make, patch.Model, patch.Plate, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *VehicleSQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.store.Execute(ctx, "DELETE FROM vehiculos WHERE id = ?", id)
	return err
}

func mapVehicle(row database.Row) entities.Vehicle {
	return entities.Vehicle{
		ID:         rowInt(row, "id"),
		CustomerID: rowInt(row, "cliente_id"),
		Make:       rowString(row, "marca"),
		Model:      rowString(row, "modelo"),
		Plate:      rowString(row, "placas"),
		CreatedAt:  rowString(row, "created_at"),
	}
}

package repository

import (
	"context"

	"carmasters/internal/domain/entities"
	"carmasters/internal/infrastructure/database"
	"carmasters/internal/usecase/interfaces"
)

// CustomerSQLRepository persists Customer rows through the storage adapter,
// so the same code serves the embedded and the client/server backend.
type CustomerSQLRepository struct {
	store database.Store
}

var _ interfaces.ICustomerRepository = (*CustomerSQLRepository)(nil)

func NewCustomerSQLRepository(store database.Store) *CustomerSQLRepository {
	return &CustomerSQLRepository{store: store}
}

func (r *CustomerSQLRepository) Create(ctx context.Context, name, phone, email string) (entities.Customer, error) {
	res, err := r.store.Execute(ctx,
		"INSERT INTO clientes (nombre, telefono, correo) VALUES (?,?,?)",
		name, nullIfEmpty(phone), nullIfEmpty(email))
	if err != nil {
		return entities.Customer{}, err
	}
	return r.GetByID(ctx, res.LastInsertID)
}

func (r *CustomerSQLRepository) GetByID(ctx context.Context, id int64) (entities.Customer, error) {
	row, err := r.store.QueryOne(ctx, "SELECT * FROM clientes WHERE id = ?", id)
	if err != nil {
		return entities.Customer{}, err
	}
	if row == nil {
		return entities.Customer{}, nil
	}
	return mapCustomer(row), nil
}

func (r *CustomerSQLRepository) List(ctx context.Context) ([]entities.Customer, error) {
	rows, err := r.store.QueryAll(ctx, "SELECT * FROM clientes ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapCustomer(row))
	}
	return out, nil
}

func (r *CustomerSQLRepository) Update(ctx context.Context, id int64, patch entities.CustomerPatch) (entities.Customer, error) {
	_, err := r.store.Execute(ctx,
		`UPDATE clientes
		 SET nombre = COALESCE(?, nombre),
		     telefono = COALESCE(?, telefono),
		     correo = COALESCE(?, correo)
		 WHERE id = ?`,
		patch.Name, patch.Phone, patch.Email, id)
	if err != nil {
		return entities.Customer{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *CustomerSQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.store.Execute(ctx, "DELETE FROM clientes WHERE id = ?", id)
	return err
}

func mapCustomer(row database.Row) entities.Customer {
	return entities.Customer{
		ID:        rowInt(row, "id"),
		Name:      rowString(row, "nombre"),
		Phone:     rowString(row, "telefono"),
		Email:     rowString(row, "correo"),
		CreatedAt: rowString(row, "created_at"),
	}
}

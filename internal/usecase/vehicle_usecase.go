package usecase

import (
	"context"
	"errors"
	"log"

	"carmasters/internal/domain/entities"
	"carmasters/internal/usecase/interfaces"
)

var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrInvalidCustomerRef = errors.New("invalid cliente_id")
)

// IVehicleUseCase exposes vehicle CRUD. Creation enforces the relational
// invariant that the owning customer exists before the row is inserted.
type IVehicleUseCase interface {
	Create(ctx context.Context, customerID int64, make, model, plate string) (entities.Vehicle, error)
	GetByID(ctx context.Context, id int64) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	Update(ctx context.Context, id int64, patch entities.VehiclePatch) (entities.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

type VehicleUseCase struct {
	repo      interfaces.IVehicleRepository
	customers interfaces.ICustomerRepository
	audit     interfaces.IAuditLog
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customers interfaces.ICustomerRepository, audit interfaces.IAuditLog) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, customers: customers, audit: audit}
}

func (u *VehicleUseCase) Create(ctx context.Context, customerID int64, make, model, plate string) (entities.Vehicle, error) {
	if customerID <= 0 {
		return entities.Vehicle{}, ErrInvalidCustomerRef
	}
	owner, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if owner.ID == 0 {
		return entities.Vehicle{}, ErrInvalidCustomerRef
	}

	v, err := u.repo.Create(ctx, customerID, make, model, plate)
	if err != nil {
		return entities.Vehicle{}, err
	}
	u.record(ctx, "vehiculo_creado", v.ID)
	return v, nil
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id int64) (entities.Vehicle, error) {
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == 0 {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.List(ctx)
}

func (u *VehicleUseCase) Update(ctx context.Context, id int64, patch entities.VehiclePatch) (entities.Vehicle, error) {
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if existing.ID == 0 {
		return entities.Vehicle{}, ErrVehicleNotFound
	}

	v, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Vehicle{}, err
	}
	u.record(ctx, "vehiculo_editado", id)
	return v, nil
}

func (u *VehicleUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == 0 {
		return ErrVehicleNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.record(ctx, "vehiculo_eliminado", id)
	return nil
}

func (u *VehicleUseCase) record(ctx context.Context, action string, detail any) {
	if err := u.audit.Record(ctx, action, detail); err != nil {
		log.Printf("[audit] record failed action=%s err=%v", action, err)
	}
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"carmasters/internal/domain/entities"
	"carmasters/internal/usecase/interfaces"
)

var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrCustomerNameRequired = errors.New("customer name required")
)

// ICustomerUseCase exposes customer CRUD for the admin panel.
type ICustomerUseCase interface {
	Create(ctx context.Context, name, phone, email string) (entities.Customer, error)
	GetByID(ctx context.Context, id int64) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, id int64, patch entities.CustomerPatch) (entities.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerUseCase struct {
	repo  interfaces.ICustomerRepository
	audit interfaces.IAuditLog
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, audit interfaces.IAuditLog) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, audit: audit}
}

func (u *CustomerUseCase) Create(ctx context.Context, name, phone, email string) (entities.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Customer{}, ErrCustomerNameRequired
	}

	c, err := u.repo.Create(ctx, name, phone, email)
	if err != nil {
		return entities.Customer{}, err
	}
	u.record(ctx, "cliente_creado", map[string]any{"id": c.ID, "nombre": c.Name})
	return c, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id int64) (entities.Customer, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == 0 {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

func (u *CustomerUseCase) Update(ctx context.Context, id int64, patch entities.CustomerPatch) (entities.Customer, error) {
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID == 0 {
		return entities.Customer{}, ErrCustomerNotFound
	}

	c, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Customer{}, err
	}
	u.record(ctx, "cliente_editado", id)
	return c, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == 0 {
		return ErrCustomerNotFound
	}

	// Vehicles and orders of the customer go with it via FK cascade.
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.record(ctx, "cliente_eliminado", id)
	return nil
}

func (u *CustomerUseCase) record(ctx context.Context, action string, detail any) {
	if err := u.audit.Record(ctx, action, detail); err != nil {
		log.Printf("[audit] record failed action=%s err=%v", action, err)
	}
}

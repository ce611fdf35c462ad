package usecase

import (
	"context"
	"errors"
	"testing"

	"carmasters/internal/domain/entities"
	mock_interfaces "carmasters/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVehicleUseCase_Create(t *testing.T) {
	t.Run("non-positive customer id", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), 0, "Mazda", "3", "ABC-123")
		if !errors.Is(err, ErrInvalidCustomerRef) {
			t.Fatalf("expected ErrInvalidCustomerRef, got %v", err)
		}
	})

	t.Run("unknown customer blocks the insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customers, nil)

		customers.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.Customer{}, nil)
		// No repo.Create expectation: the row must never reach storage.

		_, err := uc.Create(context.Background(), 42, "Mazda", "3", "ABC-123")
		if !errors.Is(err, ErrInvalidCustomerRef) {
			t.Fatalf("expected ErrInvalidCustomerRef, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLog(ctrl)
		uc := NewVehicleUseCase(repo, customers, audit)

		customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Customer{ID: 1}, nil)
		repo.EXPECT().Create(gomock.Any(), int64(1), "Mazda", "3", "ABC-123").
			Return(entities.Vehicle{ID: 10, CustomerID: 1, Make: "Mazda"}, nil)
		audit.EXPECT().Record(gomock.Any(), "vehiculo_creado", gomock.Any()).Return(nil).Times(1)

		got, err := uc.Create(context.Background(), 1, "Mazda", "3", "ABC-123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 10 {
			t.Fatalf("expected id 10, got %d", got.ID)
		}
	})
}

func TestVehicleUseCase_GetByID(t *testing.T) {
	t.Run("absent row maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(8)).Return(entities.Vehicle{}, nil)

		_, err := uc.GetByID(context.Background(), 8)
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})
}

func TestVehicleUseCase_Update(t *testing.T) {
	t.Run("partial patch keeps other fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLog(ctrl)
		uc := NewVehicleUseCase(repo, nil, audit)

		plate := "XYZ-987"
		repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Vehicle{ID: 2, Make: "Mazda"}, nil)
		repo.EXPECT().Update(gomock.Any(), int64(2), entities.VehiclePatch{Plate: &plate}).
			Return(entities.Vehicle{ID: 2, Make: "Mazda", Plate: "XYZ-987"}, nil)
		audit.EXPECT().Record(gomock.Any(), "vehiculo_editado", gomock.Any()).Return(nil).Times(1)

		got, err := uc.Update(context.Background(), 2, entities.VehiclePatch{Plate: &plate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Make != "Mazda" || got.Plate != "XYZ-987" {
			t.Fatalf("unexpected vehicle: %+v", got)
		}
	})
}

func TestVehicleUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Vehicle{}, nil)

		if err := uc.Delete(context.Background(), 3); !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLog(ctrl)
		uc := NewVehicleUseCase(repo, nil, audit)

		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(entities.Vehicle{ID: 3}, nil)
		repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
		audit.EXPECT().Record(gomock.Any(), "vehiculo_eliminado", gomock.Any()).Return(nil).Times(1)

		if err := uc.Delete(context.Background(), 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"log"

	"carmasters/internal/domain/entities"
	"carmasters/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrImageRequired     = errors.New("image file required")
	ErrOrderCustomerGone = errors.New("order customer not found")
	ErrOrderVehicleGone  = errors.New("order vehicle not found")
)

// CreateOrderInput carries everything the boundary collected for a new order.
// Images are the already-stored evidence paths (file IO happened upstream).
type CreateOrderInput struct {
	CustomerID   int64
	VehicleID    int64
	Description  string
	Service      string
	Images       []string
	Total        float64
	Advance      float64
	ScheduledAt  string
	DeliveryDate string
	Priority     string
	Technician   string
}

// IOrderUseCase is the order lifecycle manager: creation with evidence and
// tracking artifact, coalesce updates with balance recomputation, image
// attachment, and per-order cost lines.
type IOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id int64) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, id int64, patch entities.OrderPatch) (entities.Order, error)
	AttachImage(ctx context.Context, id int64, imagePath string) (entities.Order, error)
	AddCostLine(ctx context.Context, orderID int64, concept string, cost float64, category string) (entities.CostLine, error)
	ListCostLines(ctx context.Context, orderID int64) ([]entities.CostLine, error)
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	customers interfaces.ICustomerRepository
	vehicles  interfaces.IVehicleRepository
	costs     interfaces.ICostLineRepository
	tracking  interfaces.ITrackingCodeGenerator
	audit     interfaces.IAuditLog
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	customers interfaces.ICustomerRepository,
	vehicles interfaces.IVehicleRepository,
	costs interfaces.ICostLineRepository,
	tracking interfaces.ITrackingCodeGenerator,
	audit interfaces.IAuditLog,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, customers: customers, vehicles: vehicles, costs: costs, tracking: tracking, audit: audit}
}

func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	customer, err := u.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.Order{}, err
	}
	if customer.ID == 0 {
		return entities.Order{}, ErrOrderCustomerGone
	}
	vehicle, err := u.vehicles.GetByID(ctx, in.VehicleID)
	if err != nil {
		return entities.Order{}, err
	}
	if vehicle.ID == 0 {
		return entities.Order{}, ErrOrderVehicleGone
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	priority := in.Priority
	if priority == "" {
		priority = "normal"
	}

	order := entities.Order{
		CustomerID:   in.CustomerID,
		VehicleID:    in.VehicleID,
		Description:  in.Description,
		Images:       images,
		Service:      in.Service,
		Total:        in.Total,
		Advance:      in.Advance,
		Balance:      in.Total - in.Advance,
		Status:       entities.OrderStatusPending,
		ScheduledAt:  in.ScheduledAt,
		DeliveryDate: in.DeliveryDate,
		Priority:     priority,
		Technician:   in.Technician,
	}

	id, err := u.repo.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}

	// Second, non-atomic step: a crash here leaves an order without its QR,
	// which Update repairs later. Never fails the creation.
	u.ensureTrackingCode(ctx, id, "")

	u.record(ctx, "orden_creada", id)
	return u.repo.GetByID(ctx, id)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id int64) (entities.Order, error) {
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

// Update applies a coalesce patch and then always recomputes saldo from the
// stored total/anticipo, even when neither changed in this call. Status values
// are checked against the closed set, but transitions themselves are not
// gated: the admin UI is trusted to present only sensible moves.
func (u *OrderUseCase) Update(ctx context.Context, id int64, patch entities.OrderPatch) (entities.Order, error) {
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.ID == 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	if patch.Status != nil && !entities.OrderStatus(*patch.Status).Valid() {
		return entities.Order{}, ErrInvalidStatus
	}

	if err := u.repo.Update(ctx, id, patch); err != nil {
		return entities.Order{}, err
	}
	if err := u.repo.RecomputeBalance(ctx, id); err != nil {
		return entities.Order{}, err
	}

	u.ensureTrackingCode(ctx, id, existing.TrackingCode)

	u.record(ctx, "orden_editada", id)
	return u.repo.GetByID(ctx, id)
}

// AttachImage appends one evidence path to the stored list. Read-modify-write
// on the serialized column; single writer per order is assumed.
func (u *OrderUseCase) AttachImage(ctx context.Context, id int64, imagePath string) (entities.Order, error) {
	if imagePath == "" {
		return entities.Order{}, ErrImageRequired
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.ID == 0 {
		return entities.Order{}, ErrOrderNotFound
	}

	images := append(existing.Images, imagePath)
	if err := u.repo.SetImages(ctx, id, images); err != nil {
		return entities.Order{}, err
	}

	u.record(ctx, "imagen_agregada", map[string]any{"orden": id, "ruta": imagePath})
	existing.Images = images
	return existing, nil
}

// AddCostLine inserts a cost record tied to an order id. The parent order is
// deliberately not checked and order totals are not touched, matching the
// behavior the admin panel was built against.
func (u *OrderUseCase) AddCostLine(ctx context.Context, orderID int64, concept string, cost float64, category string) (entities.CostLine, error) {
	if category == "" {
		category = string(entities.CostCategoryMaterial)
	}

	line, err := u.costs.Create(ctx, entities.CostLine{
		OrderID:  orderID,
		Concept:  concept,
		Cost:     cost,
		Category: entities.CostCategory(category),
	})
	if err != nil {
		return entities.CostLine{}, err
	}

	u.record(ctx, "costo_agregado", map[string]any{"orden": orderID, "concepto": concept, "costo": cost})
	return line, nil
}

func (u *OrderUseCase) ListCostLines(ctx context.Context, orderID int64) ([]entities.CostLine, error) {
	return u.costs.ListByOrderID(ctx, orderID)
}

// ensureTrackingCode generates and patches the QR path when it is still
// missing. Best-effort on both steps; failures only log.
func (u *OrderUseCase) ensureTrackingCode(ctx context.Context, id int64, current string) {
	if current != "" {
		return
	}
	path, err := u.tracking.Generate(ctx, id)
	if err != nil {
		log.Printf("[orders][tracking] generate failed orden=%d err=%v", id, err)
		return
	}
	if err := u.repo.SetTrackingCode(ctx, id, path); err != nil {
		log.Printf("[orders][tracking] patch failed orden=%d err=%v", id, err)
	}
}

func (u *OrderUseCase) record(ctx context.Context, action string, detail any) {
	if err := u.audit.Record(ctx, action, detail); err != nil {
		log.Printf("[audit] record failed action=%s err=%v", action, err)
	}
}

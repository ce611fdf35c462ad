package repository

import (
	"context"
	"encoding/json"

	"carmasters/internal/domain/entities"
	"carmasters/internal/infrastructure/database"
	"carmasters/internal/usecase/interfaces"
)

const orderSelect = `
	SELECT
		o.*,
		c.nombre AS cliente,
		v.marca || ' ' || v.modelo AS vehiculo
	FROM ordenes o
	JOIN clientes c ON c.id = o.cliente_id
	JOIN vehiculos v ON v.id = o.vehiculo_id`

// OrderSQLRepository persists Order rows through the storage adapter. List
// and detail reads join the customer name and a make+model vehicle label the
// way the admin panel displays them.
type OrderSQLRepository struct {
	store database.Store
}

var _ interfaces.IOrderRepository = (*OrderSQLRepository)(nil)

func NewOrderSQLRepository(store database.Store) *OrderSQLRepository {
	return &OrderSQLRepository{store: store}
}

func (r *OrderSQLRepository) Create(ctx context.Context, o entities.Order) (int64, error) {
	images, err := json.Marshal(o.Images)
	if err != nil {
		return 0, err
	}
	res, err := r.store.Execute(ctx,
		`INSERT INTO ordenes
		(cliente_id, vehiculo_id, descripcion, imagenes, servicio, total, anticipo, saldo,
		 fecha_cita, fecha_entrega, qr, status, prioridad, tecnico)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		o.CustomerID, o.VehicleID, o.Description, string(images), o.Service,
		o.Total, o.Advance, o.Balance,
		nullIfEmpty(o.ScheduledAt), nullIfEmpty(o.DeliveryDate),
		o.TrackingCode, string(o.Status), o.Priority, nullIfEmpty(o.Technician))
	if err != nil {
		return 0, err
	}
	return res.LastInsertID, nil
}

func (r *OrderSQLRepository) GetByID(ctx context.Context, id int64) (entities.Order, error) {
	row, err := r.store.QueryOne(ctx, orderSelect+" WHERE o.id = ?", id)
	if err != nil {
		return entities.Order{}, err
	}
	if row == nil {
		return entities.Order{}, nil
	}
	return mapOrder(row), nil
}

func (r *OrderSQLRepository) List(ctx context.Context) ([]entities.Order, error) {
	rows, err := r.store.QueryAll(ctx, orderSelect+" ORDER BY o.created_at DESC")
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapOrder(row))
	}
	return out, nil
}

func (r *OrderSQLRepository) Update(ctx context.Context, id int64, patch entities.OrderPatch) error {
	_, err := r.store.Execute(ctx,
		`UPDATE ordenes SET
			status = COALESCE(?, status),
			total = COALESCE(?, total),
			anticipo = COALESCE(?, anticipo),
			fecha_entrega = COALESCE(?, fecha_entrega),
			tecnico = COALESCE(?, tecnico),
			prioridad = COALESCE(?, prioridad)
		WHERE id = ?`,
		patch.Status, patch.Total, patch.Advance, patch.DeliveryDate, patch.Technician, patch.Priority, id)
	return err
}

// RecomputeBalance rewrites saldo from the stored financial fields in one
// statement, so it is safe to run after every update.
func (r *OrderSQLRepository) RecomputeBalance(ctx context.Context, id int64) error {
	_, err := r.store.Execute(ctx, "UPDATE ordenes SET saldo = total - anticipo WHERE id = ?", id)
	return err
}

func (r *OrderSQLRepository) SetImages(ctx context.Context, id int64, images []string) error {
	raw, err := json.Marshal(images)
	if err != nil {
		return err
	}
	_, err = r.store.Execute(ctx, "UPDATE ordenes SET imagenes = ? WHERE id = ?", string(raw), id)
	return err
}

func (r *OrderSQLRepository) SetTrackingCode(ctx context.Context, id int64, path string) error {
	_, err := r.store.Execute(ctx, "UPDATE ordenes SET qr = ? WHERE id = ?", path, id)
	return err
}

func mapOrder(row database.Row) entities.Order {
	return entities.Order{
		ID:           rowInt(row, "id"),
		CustomerID:   rowInt(row, "cliente_id"),
		VehicleID:    rowInt(row, "vehiculo_id"),
		Description:  rowString(row, "descripcion"),
		Images:       decodeImageList(rowString(row, "imagenes")),
		Service:      rowString(row, "servicio"),
		Total:        rowFloat(row, "total"),
		Advance:      rowFloat(row, "anticipo"),
		Balance:      rowFloat(row, "saldo"),
		Status:       entities.OrderStatus(rowString(row, "status")),
		ScheduledAt:  rowString(row, "fecha_cita"),
		DeliveryDate: rowString(row, "fecha_entrega"),
		TrackingCode: rowString(row, "qr"),
		Priority:     rowString(row, "prioridad"),
		Technician:   rowString(row, "tecnico"),
		CreatedAt:    rowString(row, "created_at"),
		CustomerName: rowString(row, "cliente"),
		VehicleLabel: rowString(row, "vehiculo"),
	}
}

package entities

// OrderStatus is the lifecycle state of a service order.
//
// Domain notes:
//   - pending is the initial state; delivered is terminal.
//   - Transitions are not gated: the admin UI is trusted to offer only
//     sensible moves, so any status may be set from any other. Only set
//     membership is enforced.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a detailing service order.
//
// Storage model (ordenes table):
//   - Images is persisted as a JSON array in the imagenes TEXT column.
//   - Balance is derived (total - anticipo) and recomputed after every
//     financial update; it is never taken from client input.
//   - TrackingCode holds the /uploads path of the QR png generated after
//     insert (create-then-patch, so it may be transiently empty).
//
// Date columns are TEXT in SQLite and TIMESTAMP in Postgres; they are carried
// as strings end to end, the way the admin UI consumes them.

type Order struct {
	ID           int64       `json:"id"`
	CustomerID   int64       `json:"cliente_id"`
	VehicleID    int64       `json:"vehiculo_id"`
	Description  string      `json:"descripcion"`
	Images       []string    `json:"imagenes"`
	Service      string      `json:"servicio"`
	Total        float64     `json:"total"`
	Advance      float64     `json:"anticipo"`
	Balance      float64     `json:"saldo"`
	Status       OrderStatus `json:"status"`
	ScheduledAt  string      `json:"fecha_cita"`
	DeliveryDate string      `json:"fecha_entrega"`
	TrackingCode string      `json:"qr"`
	Priority     string      `json:"prioridad"`
	Technician   string      `json:"tecnico"`
	CreatedAt    string      `json:"created_at"`

	// Joined labels, populated by list/detail reads only.
	CustomerName string `json:"cliente,omitempty"`
	VehicleLabel string `json:"vehiculo,omitempty"`
}

// OrderPatch is a coalesce update: nil fields keep their stored value.
type OrderPatch struct {
	Status       *string
	Total        *float64
	Advance      *float64
	DeliveryDate *string
	Technician   *string
	Priority     *string
}

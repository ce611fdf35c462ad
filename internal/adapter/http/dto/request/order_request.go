package request

// CreateOrderRequest binds the multipart form the configurator posts. The
// evidence files themselves ride alongside under the "imagenes" field and are
// handled by the upload storage before the use case runs.
type CreateOrderRequest struct {
	ClienteID    int64   `form:"cliente_id" binding:"required"`
	VehiculoID   int64   `form:"vehiculo_id" binding:"required"`
	Descripcion  string  `form:"descripcion"`
	Servicio     string  `form:"servicio"`
	Total        float64 `form:"total"`
	Anticipo     float64 `form:"anticipo"`
	FechaCita    string  `form:"fecha_cita"`
	FechaEntrega string  `form:"fecha_entrega"`
	Prioridad    string  `form:"prioridad"`
	Tecnico      string  `form:"tecnico"`
}

// UpdateOrderRequest is a coalesce update: nil fields are left untouched.
// Saldo is never accepted here; it is derived server-side.
type UpdateOrderRequest struct {
	Status       *string  `json:"status"`
	Total        *float64 `json:"total"`
	Anticipo     *float64 `json:"anticipo"`
	FechaEntrega *string  `json:"fecha_entrega"`
	Tecnico      *string  `json:"tecnico"`
	Prioridad    *string  `json:"prioridad"`
}

type CreateCostLineRequest struct {
	Concepto string  `json:"concepto" binding:"required"`
	Costo    float64 `json:"costo" binding:"required"`
	Tipo     string  `json:"tipo"`
}

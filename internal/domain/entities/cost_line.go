package entities

// CostCategory classifies a per-order cost line.
type CostCategory string

const (
	CostCategoryMaterial CostCategory = "material"
	CostCategoryLabor    CostCategory = "labor"
	CostCategoryExternal CostCategory = "external"
)

// CostLine is a cost record tied to an order (costos table).
//
// Known gap: inserting a cost line does not verify the parent order exists
// and does not touch the order totals. The admin panel relies on both.
type CostLine struct {
	ID        int64        `json:"id"`
	OrderID   int64        `json:"orden_id"`
	Concept   string       `json:"concepto"`
	Cost      float64      `json:"costo"`
	Category  CostCategory `json:"tipo"`
	CreatedAt string       `json:"created_at"`
}

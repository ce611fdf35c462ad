package entities

// Vehicle belongs to exactly one customer (vehiculos table). Deleting a
// vehicle cascades to its orders at the storage level.
type Vehicle struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"cliente_id"`
	Make       string `json:"marca"`
	Model      string `json:"modelo"`
	Plate      string `json:"placas"`
	CreatedAt  string `json:"created_at"`
}

// VehiclePatch is a coalesce update: nil fields keep their stored value.
type VehiclePatch struct {
	Make  *string
	Model *string
	Plate *string
}

package request

type CreateVehicleRequest struct {
	ClienteID int64  `json:"cliente_id" binding:"required"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	Placas    string `json:"placas"`
}

// UpdateVehicleRequest is a coalesce update: nil fields are left untouched.
type UpdateVehicleRequest struct {
	Marca  *string `json:"marca"`
	Modelo *string `json:"modelo"`
	Placas *string `json:"placas"`
}

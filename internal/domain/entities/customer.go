package entities

// Customer is a shop client (clientes table). Deleting a customer cascades to
// its vehicles and orders at the storage level.
type Customer struct {
	ID        int64  `json:"id"`
	Name      string `json:"nombre"`
	Phone     string `json:"telefono"`
	Email     string `json:"correo"`
	CreatedAt string `json:"created_at"`
}

// CustomerPatch is a coalesce update: nil fields keep their stored value.
type CustomerPatch struct {
	Name  *string
	Phone *string
	Email *string
}

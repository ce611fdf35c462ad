package request

// CreateCustomerRequest matches the admin panel payload; field names stay in
// Spanish because that is the API contract the UI speaks.
type CreateCustomerRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Telefono string `json:"telefono"`
	Correo   string `json:"correo"`
}

// UpdateCustomerRequest is a coalesce update: nil fields are left untouched.
type UpdateCustomerRequest struct {
	Nombre   *string `json:"nombre"`
	Telefono *string `json:"telefono"`
	Correo   *string `json:"correo"`
}

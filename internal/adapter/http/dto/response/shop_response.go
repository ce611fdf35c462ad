package response

import "carmasters/internal/domain/entities"

// Entities already carry the Spanish JSON contract; these wrappers exist so
// handlers stay uniform about what leaves the process.

type CustomerResponse = entities.Customer

func FromCustomer(c entities.Customer) CustomerResponse { return c }

func FromCustomers(cs []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(cs))
	out = append(out, cs...)
	return out
}

type VehicleResponse = entities.Vehicle

func FromVehicle(v entities.Vehicle) VehicleResponse { return v }

func FromVehicles(vs []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vs))
	out = append(out, vs...)
	return out
}

type OrderResponse = entities.Order

func FromOrder(o entities.Order) OrderResponse { return o }

func FromOrders(os []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(os))
	out = append(out, os...)
	return out
}

type CostLineResponse = entities.CostLine

func FromCostLine(l entities.CostLine) CostLineResponse { return l }

func FromCostLines(ls []entities.CostLine) []CostLineResponse {
	out := make([]CostLineResponse, 0, len(ls))
	out = append(out, ls...)
	return out
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	OK bool `json:"ok"`
}

// AttachImageResponse reports a stored evidence image plus the full list
// after the append.
type AttachImageResponse struct {
	Message  string   `json:"message"`
	Ruta     string   `json:"ruta"`
	Imagenes []string `json:"imagenes"`
}

package routes

import (
	"carmasters/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/clientes"
	PathVehicles  = "/vehiculos"
	PathOrders    = "/ordenes"
)

// addShopRoutes mounts the customer/vehicle/order endpoints. Read access to
// customer and vehicle detail stays public because the tracking QR resolves
// there; everything mutating requires a session token. The costos endpoints
// are deliberately left open, matching the behavior the POS was built
// against.
func addShopRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc, customers *handlers.CustomerHandler, vehicles *handlers.VehicleHandler, orders *handlers.OrderHandler) {
	cli := rg.Group(PathCustomers)
	{
		cli.GET("", customers.List)
		cli.GET("/:id", customers.Get)
		cli.POST("", authRequired, customers.Create)
		cli.PUT("/:id", authRequired, customers.Update)
		cli.DELETE("/:id", authRequired, customers.Delete)
	}

	veh := rg.Group(PathVehicles)
	{
		veh.GET("", authRequired, vehicles.List)
		veh.GET("/:id", vehicles.Get)
		veh.POST("", authRequired, vehicles.Create)
		veh.PUT("/:id", authRequired, vehicles.Update)
		veh.DELETE("/:id", authRequired, vehicles.Delete)
	}

	ord := rg.Group(PathOrders)
	{
		ord.GET("", authRequired, orders.List)
		ord.GET("/:id", authRequired, orders.Get)
		ord.POST("", authRequired, orders.Create)
		ord.PUT("/:id", authRequired, orders.Update)
		ord.POST("/:id/imagenes", authRequired, orders.AttachImage)
		ord.GET("/:id/costos", orders.ListCostLines)
		ord.POST("/:id/costos", orders.AddCostLine)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"carmasters/internal/adapter/http/dto/request"
	"carmasters/internal/adapter/http/dto/response"
	"carmasters/internal/domain/entities"
	"carmasters/internal/usecase"
	"carmasters/pkg"

	"github.com/gin-gonic/gin"
)

// VehicleHandler handles HTTP requests for customer vehicles.
type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	vehicle, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var payload request.CreateVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.Create(c.Request.Context(), payload.ClienteID, payload.Marca, payload.Modelo, payload.Placas)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	vehicle, err := h.usecase.Update(c.Request.Context(), id, entities.VehiclePatch{
		Make:  payload.Marca,
		Model: payload.Modelo,
		Plate: payload.Placas,
	})
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DeleteResponse{OK: true})
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerRef):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_REF", "cliente_id inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehículo no encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

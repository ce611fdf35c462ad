package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"carmasters/internal/adapter/http/dto/request"
	"carmasters/internal/adapter/http/dto/response"
	"carmasters/internal/domain/entities"
	"carmasters/internal/usecase"
	"carmasters/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
var errInvalidID = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)

// CustomerHandler handles HTTP requests for shop customers.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.Nombre, payload.Telefono, payload.Correo)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Update(c.Request.Context(), id, entities.CustomerPatch{
		Name:  payload.Nombre,
		Phone: payload.Telefono,
		Email: payload.Correo,
	})
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DeleteResponse{OK: true})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCustomerNameRequired):
		return pkg.NewDomainErrorSimple("CUSTOMER_NAME_REQUIRED", "Nombre es requerido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Cliente no encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

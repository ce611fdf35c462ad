package handlers

import (
	"errors"
	"log"
	"net/http"

	"carmasters/internal/adapter/http/dto/request"
	"carmasters/internal/adapter/http/dto/response"
	"carmasters/internal/domain/entities"
	"carmasters/internal/usecase"
	"carmasters/internal/usecase/interfaces"
	"carmasters/pkg"

	"github.com/gin-gonic/gin"
)

// maxEvidenceImages caps how many files one order creation accepts, matching
// the configurator's upload widget.
const maxEvidenceImages = 8

var errImageMissing = pkg.NewDomainErrorSimple("IMAGE_REQUIRED", "Falta el archivo 'imagen'", http.StatusBadRequest)

// OrderHandler handles HTTP requests for service orders, their evidence
// images, and their cost lines.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	images  interfaces.IImageStorage
}

func NewOrderHandler(uc usecase.IOrderUseCase, images interfaces.IImageStorage) *OrderHandler {
	return &OrderHandler{usecase: uc, images: images}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// Create accepts a multipart form: scalar fields plus up to maxEvidenceImages
// files under "imagenes". Files are stored first so the use case only ever
// sees path strings.
func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	var paths []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["imagenes"]
		if len(files) > maxEvidenceImages {
			files = files[:maxEvidenceImages]
		}
		for _, file := range files {
			path, err := h.images.Save(file)
			if err != nil {
				log.Printf("[orders][upload] save failed name=%s err=%v", file.Filename, err)
				appErr := mapOrderError(err)
				c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
			paths = append(paths, path)
		}
	}

	order, err := h.usecase.Create(c.Request.Context(), usecase.CreateOrderInput{
		CustomerID:   payload.ClienteID,
		VehicleID:    payload.VehiculoID,
		Description:  payload.Descripcion,
		Service:      payload.Servicio,
		Images:       paths,
		Total:        payload.Total,
		Advance:      payload.Anticipo,
		ScheduledAt:  payload.FechaCita,
		DeliveryDate: payload.FechaEntrega,
		Priority:     payload.Prioridad,
		Technician:   payload.Tecnico,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), id, entities.OrderPatch{
		Status:       payload.Status,
		Total:        payload.Total,
		Advance:      payload.Anticipo,
		DeliveryDate: payload.FechaEntrega,
		Technician:   payload.Tecnico,
		Priority:     payload.Prioridad,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// AttachImage stores one file from the "imagen" field and appends its path to
// the order's evidence list.
func (h *OrderHandler) AttachImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("imagen")
	if err != nil || file == nil {
		c.JSON(errImageMissing.HTTPStatus, errImageMissing.ToHTTPError())
		return
	}

	path, err := h.images.Save(file)
	if err != nil {
		log.Printf("[orders][upload] save failed name=%s err=%v", file.Filename, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.AttachImage(c.Request.Context(), id, path)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.AttachImageResponse{
		Message:  "Imagen subida",
		Ruta:     path,
		Imagenes: order.Images,
	})
}

func (h *OrderHandler) ListCostLines(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	lines, err := h.usecase.ListCostLines(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCostLines(lines))
}

func (h *OrderHandler) AddCostLine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload request.CreateCostLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	line, err := h.usecase.AddCostLine(c.Request.Context(), id, payload.Concepto, payload.Costo, payload.Tipo)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCostLine(line))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageRequired):
		return pkg.NewDomainErrorSimple("IMAGE_REQUIRED", "Falta el archivo 'imagen'", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Orden no encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderCustomerGone):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Cliente no encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderVehicleGone):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehículo no encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"carmasters/internal/adapter/http/handlers/mocks"
	"carmasters/internal/domain/entities"
	"carmasters/internal/usecase"
	mock_interfaces "carmasters/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartBody(t *testing.T, fields map[string]string, fileField string, fileNames []string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for _, name := range fileNames {
		fw, err := mw.CreateFormFile(fileField, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := io.WriteString(fw, "fake image bytes"); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		images := mock_interfaces.NewMockIImageStorage(ctrl)
		h := NewOrderHandler(uc, images)

		r := gin.New()
		r.POST("/ordenes", h.Create)

		body, contentType := multipartBody(t, map[string]string{"descripcion": "sin refs"}, "imagenes", nil)
		req := httptest.NewRequest(http.MethodPost, "/ordenes", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stores files then passes paths", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		images := mock_interfaces.NewMockIImageStorage(ctrl)
		h := NewOrderHandler(uc, images)

		images.EXPECT().Save(gomock.Any()).Return("/uploads/a.jpg", nil)
		images.EXPECT().Save(gomock.Any()).Return("/uploads/b.jpg", nil)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateOrderInput) (entities.Order, error) {
				if in.CustomerID != 1 || in.VehicleID != 2 {
					t.Fatalf("unexpected refs: %+v", in)
				}
				if len(in.Images) != 2 || in.Images[0] != "/uploads/a.jpg" {
					t.Fatalf("unexpected images: %#v", in.Images)
				}
				if in.Total != 1500 || in.Advance != 500 {
					t.Fatalf("unexpected amounts: %+v", in)
				}
				return entities.Order{ID: 7, Balance: 1000, Status: entities.OrderStatusPending}, nil
			},
		)

		r := gin.New()
		r.POST("/ordenes", h.Create)

		body, contentType := multipartBody(t, map[string]string{
			"cliente_id":  "1",
			"vehiculo_id": "2",
			"servicio":    "detallado",
			"total":       "1500",
			"anticipo":    "500",
		}, "imagenes", []string{"a.jpg", "b.jpg"})
		req := httptest.NewRequest(http.MethodPost, "/ordenes", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown customer maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		images := mock_interfaces.NewMockIImageStorage(ctrl)
		h := NewOrderHandler(uc, images)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrOrderCustomerGone)

		r := gin.New()
		r.POST("/ordenes", h.Create)

		body, contentType := multipartBody(t, map[string]string{"cliente_id": "99", "vehiculo_id": "1"}, "imagenes", nil)
		req := httptest.NewRequest(http.MethodPost, "/ordenes", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		uc.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(entities.Order{}, usecase.ErrInvalidStatus)

		r := gin.New()
		r.PUT("/ordenes/:id", h.Update)

		body, _ := json.Marshal(map[string]string{"status": "archived"})
		req := httptest.NewRequest(http.MethodPut, "/ordenes/1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		st := "in_progress"
		uc.EXPECT().Update(gomock.Any(), int64(1), entities.OrderPatch{Status: &st}).
			Return(entities.Order{ID: 1, Status: entities.OrderStatusInProgress, Balance: 1000}, nil)

		r := gin.New()
		r.PUT("/ordenes/:id", h.Update)

		body, _ := json.Marshal(map[string]string{"status": "in_progress"})
		req := httptest.NewRequest(http.MethodPut, "/ordenes/1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestOrderHandler_AttachImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		images := mock_interfaces.NewMockIImageStorage(ctrl)
		h := NewOrderHandler(uc, images)

		r := gin.New()
		r.POST("/ordenes/:id/imagenes", h.AttachImage)

		body, contentType := multipartBody(t, nil, "otro_campo", []string{"a.jpg"})
		req := httptest.NewRequest(http.MethodPost, "/ordenes/1/imagenes", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown order maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		images := mock_interfaces.NewMockIImageStorage(ctrl)
		h := NewOrderHandler(uc, images)

		images.EXPECT().Save(gomock.Any()).Return("/uploads/a.jpg", nil)
		uc.EXPECT().AttachImage(gomock.Any(), int64(42), "/uploads/a.jpg").
			Return(entities.Order{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.POST("/ordenes/:id/imagenes", h.AttachImage)

		body, contentType := multipartBody(t, nil, "imagen", []string{"a.jpg"})
		req := httptest.NewRequest(http.MethodPost, "/ordenes/42/imagenes", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns full list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		images := mock_interfaces.NewMockIImageStorage(ctrl)
		h := NewOrderHandler(uc, images)

		images.EXPECT().Save(gomock.Any()).Return("/uploads/b.jpg", nil)
		uc.EXPECT().AttachImage(gomock.Any(), int64(1), "/uploads/b.jpg").
			Return(entities.Order{ID: 1, Images: []string{"/uploads/a.jpg", "/uploads/b.jpg"}}, nil)

		r := gin.New()
		r.POST("/ordenes/:id/imagenes", h.AttachImage)

		body, contentType := multipartBody(t, nil, "imagen", []string{"b.jpg"})
		req := httptest.NewRequest(http.MethodPost, "/ordenes/1/imagenes", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var got struct {
			Imagenes []string `json:"imagenes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if len(got.Imagenes) != 2 {
			t.Fatalf("expected 2 images, got %#v", got.Imagenes)
		}
	})
}

func TestOrderHandler_AddCostLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		uc.EXPECT().AddCostLine(gomock.Any(), int64(3), "pintura", 250.0, "material").
			Return(entities.CostLine{ID: 1, OrderID: 3, Concept: "pintura", Cost: 250, Category: entities.CostCategoryMaterial}, nil)

		r := gin.New()
		r.POST("/ordenes/:id/costos", h.AddCostLine)

		body, _ := json.Marshal(map[string]any{"concepto": "pintura", "costo": 250, "tipo": "material"})
		req := httptest.NewRequest(http.MethodPost, "/ordenes/3/costos", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("missing concepto rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		r := gin.New()
		r.POST("/ordenes/:id/costos", h.AddCostLine)

		body, _ := json.Marshal(map[string]any{"costo": 250})
		req := httptest.NewRequest(http.MethodPost, "/ordenes/3/costos", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

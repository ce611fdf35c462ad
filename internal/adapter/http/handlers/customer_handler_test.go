package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"carmasters/internal/adapter/http/handlers/mocks"
	"carmasters/internal/domain/entities"
	"carmasters/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/clientes", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/clientes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/clientes", h.Create)

		body, _ := json.Marshal(map[string]string{"telefono": "555-0101"})
		req := httptest.NewRequest(http.MethodPost, "/clientes", bytes.NewBuffer(body))
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
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "Ana Ruiz", "555-0101", "ana@example.com").
			Return(entities.Customer{ID: 1, Name: "Ana Ruiz", Phone: "555-0101", Email: "ana@example.com"}, nil)

		r := gin.New()
		r.POST("/clientes", h.Create)

		body, _ := json.Marshal(map[string]string{"nombre": "Ana Ruiz", "telefono": "555-0101", "correo": "ana@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/clientes", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var got entities.Customer
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if got.ID != 1 || got.Name != "Ana Ruiz" {
			t.Fatalf("unexpected body: %+v", got)
		}
	})
}

func TestCustomerHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.GET("/clientes/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/clientes/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entities.Customer{}, usecase.ErrCustomerNotFound)

		r := gin.New()
		r.GET("/clientes/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/clientes/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("storage error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Customer{}, errors.New("db gone"))

		r := gin.New()
		r.GET("/clientes/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/clientes/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		r := gin.New()
		r.DELETE("/clientes/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/clientes/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]bool
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if !got["ok"] {
			t.Fatalf("expected ok=true, got %v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), int64(7)).Return(usecase.ErrCustomerNotFound)

		r := gin.New()
		r.DELETE("/clientes/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/clientes/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"carmasters/internal/adapter/http/handlers/mocks"
	"carmasters/internal/domain/entities"
	"carmasters/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing password rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/auth/register", h.Register)

		body, _ := json.Marshal(map[string]string{"username": "admin"})
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Register(gomock.Any(), "admin", "pw", "").
			Return(entities.User{}, usecase.ErrUsernameTaken)

		r := gin.New()
		r.POST("/auth/register", h.Register)

		body, _ := json.Marshal(map[string]string{"username": "admin", "password": "pw"})
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success hides the hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Register(gomock.Any(), "admin", "secret123", "Ana").
			Return(entities.User{ID: 1, Username: "admin", Name: "Ana", Role: "admin", PasswordHash: "$2a$..."}, nil)

		r := gin.New()
		r.POST("/auth/register", h.Register)

		body, _ := json.Marshal(map[string]string{"username": "admin", "password": "secret123", "nombre": "Ana"})
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		if bytes.Contains(w.Body.Bytes(), []byte("$2a$")) {
			t.Fatalf("hash leaked: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Login(gomock.Any(), "admin", "nope").Return("", usecase.ErrInvalidCredentials)

		r := gin.New()
		r.POST("/auth/login", h.Login)

		body, _ := json.Marshal(map[string]string{"username": "admin", "password": "nope"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Login(gomock.Any(), "admin", "secret123").Return("jwt-token", nil)

		r := gin.New()
		r.POST("/auth/login", h.Login)

		body, _ := json.Marshal(map[string]string{"username": "admin", "password": "secret123"})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if got["token"] != "jwt-token" {
			t.Fatalf("expected token, got %v", got)
		}
	})
}

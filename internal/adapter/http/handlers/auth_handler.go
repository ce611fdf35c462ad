package handlers

import (
	"errors"
	"net/http"

	"carmasters/internal/adapter/http/dto/request"
	"carmasters/internal/adapter/http/dto/response"
	"carmasters/internal/usecase"
	"carmasters/pkg"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin-panel account registration and login.
type AuthHandler struct {
	usecase usecase.IUserUseCase
}

func NewAuthHandler(uc usecase.IUserUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.Username, payload.Password, payload.Nombre)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	token, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.TokenResponse{Token: token})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCredentialsRequired):
		return pkg.NewDomainErrorSimple("CREDENTIALS_REQUIRED", "username and password required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", "username exists", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "invalid credentials", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

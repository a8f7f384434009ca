package handler

import (
	"errors"
	"net/http"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/apierror"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/metrics"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		metrics.IncLogin("invalid")
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalid) {
			metrics.IncLogin("failure")
			c.JSON(http.StatusUnauthorized, apierror.New("Credenciales inválidas"))
			return
		}
		metrics.IncLogin("error")
		respondError(c, err)
		return
	}
	metrics.IncLogin("success")
	c.JSON(http.StatusOK, resp)
}

// Refresh POST /v1/auth/refresh-token
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalid) {
			c.JSON(http.StatusUnauthorized, apierror.New("Refresh token inválido o expirado"))
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

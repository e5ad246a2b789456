// File: handlers/tenant.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentaldesk/models"
	"rentaldesk/services/tenant"
	"rentaldesk/utils"
)

type TenantHandler struct {
	Svc tenant.TenantService
}

func NewTenantHandler(svc tenant.TenantService) *TenantHandler {
	return &TenantHandler{Svc: svc}
}

// RegisterTenantHandler creates a tenant-portal account and issues a JWT.
func (h *TenantHandler) RegisterTenantHandler(c *gin.Context) {
	var req models.RegisterTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	resp, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, tenant.ErrDuplicateEmail):
			utils.JSONError(c, http.StatusConflict, "email already registered", "")
		case errors.Is(err, tenant.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		default:
			utils.GetLogger().Error("Tenant registration failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "registration failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginTenantHandler authenticates a tenant.
func (h *TenantHandler) LoginTenantHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	resp, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, tenant.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		utils.GetLogger().Error("Tenant login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyTenantHandler returns the tenant behind the presented token.
func (h *TenantHandler) VerifyTenantHandler(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing bearer token", "")
		return
	}
	t, err := h.Svc.Verify(c.Request.Context(), token)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "tenant": t})
}

// LogoutTenantHandler revokes the presented token.
func (h *TenantHandler) LogoutTenantHandler(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing bearer token", "")
		return
	}
	if err := h.Svc.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, tenant.ErrInvalidToken) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token", "")
			return
		}
		utils.GetLogger().Error("Tenant logout failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// TenantDirectoryHandler lists tenant accounts for the admin dashboard.
func (h *TenantHandler) TenantDirectoryHandler(c *gin.Context) {
	entries, err := h.Svc.Directory(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list tenants", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to get tenants", err.Error())
		return
	}
	c.JSON(http.StatusOK, entries)
}

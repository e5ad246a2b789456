// File: handlers/maintenance.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentaldesk/models"
	"rentaldesk/services/maintenance"
	"rentaldesk/utils"
)

type MaintenanceHandler struct {
	Svc maintenance.MaintenanceService
}

func NewMaintenanceHandler(svc maintenance.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{Svc: svc}
}

// CreateMaintenanceHandler files a repair ticket for the authenticated tenant.
func (h *MaintenanceHandler) CreateMaintenanceHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	if tenantID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
		return
	}
	var req models.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	m, err := h.Svc.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, maintenance.ErrInvalidInput) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		utils.GetLogger().Error("Failed to create maintenance request", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create maintenance request", err.Error())
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ListMaintenanceHandler returns tickets scoped to the caller: tenants see
// their own, admins see everything with optional filters.
func (h *MaintenanceHandler) ListMaintenanceHandler(c *gin.Context) {
	claims, ok := claimsFromBearer(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
		return
	}

	var (
		reqs []models.MaintenanceRequest
		err  error
	)
	switch claims.Role {
	case "admin":
		reqs, err = h.Svc.ListAll(c.Request.Context(), c.Query("tenantId"), c.Query("propertyId"), c.Query("status"))
	case "tenant":
		reqs, err = h.Svc.ListForTenant(c.Request.Context(), claims.Subject)
	default:
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
		return
	}
	if err != nil {
		if errors.Is(err, maintenance.ErrInvalidStatus) {
			utils.JSONError(c, http.StatusBadRequest, "invalid status filter", "")
			return
		}
		utils.GetLogger().Error("Failed to list maintenance requests", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to get maintenance requests", err.Error())
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// UpdateMaintenanceHandler updates a ticket's status or admin notes.
func (h *MaintenanceHandler) UpdateMaintenanceHandler(c *gin.Context) {
	id := c.Param("id")
	var req models.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	m, err := h.Svc.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, maintenance.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "invalid status", "")
		case errors.Is(err, maintenance.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "maintenance request not found", "")
		default:
			utils.GetLogger().Error("Failed to update maintenance request", zap.String("id", id), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to update maintenance request", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, m)
}

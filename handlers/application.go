// File: handlers/application.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentaldesk/models"
	"rentaldesk/services/application"
	"rentaldesk/utils"
)

type ApplicationHandler struct {
	Svc application.ApplicationService
}

func NewApplicationHandler(svc application.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Svc: svc}
}

// CreateApplicationHandler accepts a rental application from the public site.
func (h *ApplicationHandler) CreateApplicationHandler(c *gin.Context) {
	var req models.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	app, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		case errors.Is(err, application.ErrPropertyGone):
			utils.JSONError(c, http.StatusNotFound, "property not found", "")
		default:
			utils.GetLogger().Error("Failed to create application", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to create application", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListApplicationsHandler returns all applications for the admin dashboard.
func (h *ApplicationHandler) ListApplicationsHandler(c *gin.Context) {
	apps, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list applications", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to get applications", err.Error())
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateApplicationStatusHandler approves, rejects, or withdraws an application.
func (h *ApplicationHandler) UpdateApplicationStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var req models.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	app, err := h.Svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "invalid status", "")
		case errors.Is(err, application.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "application not found", "")
		default:
			utils.GetLogger().Error("Failed to update application", zap.String("id", id), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to update application", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, app)
}

// File: handlers/availability.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentaldesk/models"
	"rentaldesk/services/showing"
	"rentaldesk/utils"
)

type AvailabilityHandler struct {
	Svc showing.AvailabilityService
}

func NewAvailabilityHandler(svc showing.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// ListAvailabilityHandler returns all weekly windows for a property.
// The path parameter is the property id.
func (h *AvailabilityHandler) ListAvailabilityHandler(c *gin.Context) {
	propertyID := c.Param("id")
	rules, err := h.Svc.ListForProperty(c.Request.Context(), propertyID)
	if err != nil {
		utils.GetLogger().Error("Failed to list availability", zap.String("propertyId", propertyID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to get availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, rules)
}

// CreateAvailabilityHandler adds a weekly showing window to a property.
// The path parameter is the property id.
func (h *AvailabilityHandler) CreateAvailabilityHandler(c *gin.Context) {
	propertyID := c.Param("id")
	var req models.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	rule, err := h.Svc.Create(c.Request.Context(), propertyID, req)
	if err != nil {
		switch {
		case errors.Is(err, showing.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		case errors.Is(err, showing.ErrPropertyGone):
			utils.JSONError(c, http.StatusNotFound, "property not found", "")
		default:
			utils.GetLogger().Error("Failed to create availability", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to create availability", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// UpdateAvailabilityHandler updates a weekly window.
func (h *AvailabilityHandler) UpdateAvailabilityHandler(c *gin.Context) {
	id := c.Param("id")
	var req models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	rule, err := h.Svc.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, showing.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		case errors.Is(err, showing.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "availability not found", "")
		default:
			utils.GetLogger().Error("Failed to update availability", zap.String("id", id), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to update availability", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, rule)
}

// DeleteAvailabilityHandler removes a weekly window.
func (h *AvailabilityHandler) DeleteAvailabilityHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, showing.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "availability not found", "")
			return
		}
		utils.GetLogger().Error("Failed to delete availability", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability deleted"})
}

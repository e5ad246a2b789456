// File: handlers/showing.go
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

type ShowingHandler struct {
	Svc showing.ShowingService
}

func NewShowingHandler(svc showing.ShowingService) *ShowingHandler {
	return &ShowingHandler{Svc: svc}
}

// BookShowingHandler books a showing slot from the public site.
func (h *ShowingHandler) BookShowingHandler(c *gin.Context) {
	var req models.CreateShowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	s, err := h.Svc.Book(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, showing.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "slot already booked", "")
		case errors.Is(err, showing.ErrPropertyGone):
			utils.JSONError(c, http.StatusNotFound, "property not found", "")
		case errors.Is(err, showing.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		default:
			utils.GetLogger().Error("Failed to book showing", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to book showing", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, s)
}

// AvailableSlotsHandler returns the open showing slots for a property on a date.
func (h *ShowingHandler) AvailableSlotsHandler(c *gin.Context) {
	propertyID := c.Param("propertyId")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "")
		return
	}

	slots, err := h.Svc.AvailableSlotsForDate(c.Request.Context(), propertyID, date)
	if err != nil {
		if errors.Is(err, showing.ErrInvalidInput) {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
			return
		}
		utils.GetLogger().Error("Failed to compute available slots",
			zap.String("propertyId", propertyID), zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute available slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, slots)
}

// ListShowingsHandler returns the admin showing queue, filtered by status and property.
func (h *ShowingHandler) ListShowingsHandler(c *gin.Context) {
	showings, err := h.Svc.List(c.Request.Context(), c.Query("status"), c.Query("propertyId"))
	if err != nil {
		if errors.Is(err, showing.ErrInvalidStatus) {
			utils.JSONError(c, http.StatusBadRequest, "invalid status filter", "")
			return
		}
		utils.GetLogger().Error("Failed to list showings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to get showings", err.Error())
		return
	}
	c.JSON(http.StatusOK, showings)
}

// GetShowingHandler returns a single showing.
func (h *ShowingHandler) GetShowingHandler(c *gin.Context) {
	id := c.Param("id")
	s, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, showing.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "showing not found", "")
			return
		}
		utils.GetLogger().Error("Failed to get showing", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to get showing", err.Error())
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateShowingStatusHandler moves a showing through its lifecycle.
func (h *ShowingHandler) UpdateShowingStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var req models.UpdateShowingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	s, err := h.Svc.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, showing.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "showing not found", "")
		case errors.Is(err, showing.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "invalid status", "")
		default:
			utils.GetLogger().Error("Failed to update showing", zap.String("id", id), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to update showing", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, s)
}

// DeleteShowingHandler removes a showing record.
func (h *ShowingHandler) DeleteShowingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, showing.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "showing not found", "")
			return
		}
		utils.GetLogger().Error("Failed to delete showing", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete showing", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "showing deleted"})
}

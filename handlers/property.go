// File: handlers/property.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentaldesk/models"
	"rentaldesk/services/property"
	"rentaldesk/utils"
)

type PropertyHandler struct {
	Svc property.PropertyService
}

func NewPropertyHandler(svc property.PropertyService) *PropertyHandler {
	return &PropertyHandler{Svc: svc}
}

// ListPropertiesHandler returns all properties, newest first.
func (h *PropertyHandler) ListPropertiesHandler(c *gin.Context) {
	props, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list properties", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to get properties", err.Error())
		return
	}
	c.JSON(http.StatusOK, props)
}

// GetPropertyHandler returns a single property with its images.
func (h *PropertyHandler) GetPropertyHandler(c *gin.Context) {
	id := c.Param("id")
	prop, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found", "")
			return
		}
		utils.GetLogger().Error("Failed to get property", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to get property", err.Error())
		return
	}
	c.JSON(http.StatusOK, prop)
}

// CreatePropertyHandler creates a new listing.
func (h *PropertyHandler) CreatePropertyHandler(c *gin.Context) {
	var req models.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	prop, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("Failed to create property", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create property", err.Error())
		return
	}
	c.JSON(http.StatusCreated, prop)
}

// UpdatePropertyHandler partially updates a listing.
func (h *PropertyHandler) UpdatePropertyHandler(c *gin.Context) {
	id := c.Param("id")
	var req models.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	prop, err := h.Svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, property.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found", "")
			return
		}
		utils.GetLogger().Error("Failed to update property", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update property", err.Error())
		return
	}
	c.JSON(http.StatusOK, prop)
}

// DeletePropertyHandler removes a listing and its dependent rows.
func (h *PropertyHandler) DeletePropertyHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, property.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found", "")
			return
		}
		utils.GetLogger().Error("Failed to delete property", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete property", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "property deleted"})
}

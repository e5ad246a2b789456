// File: handlers/inquiry.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentaldesk/models"
	"rentaldesk/services/inquiry"
	"rentaldesk/utils"
)

type InquiryHandler struct {
	Svc inquiry.InquiryService
}

func NewInquiryHandler(svc inquiry.InquiryService) *InquiryHandler {
	return &InquiryHandler{Svc: svc}
}

// CreateInquiryHandler accepts a contact-form submission from the public site.
func (h *InquiryHandler) CreateInquiryHandler(c *gin.Context) {
	var req models.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	inq, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, inquiry.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		case errors.Is(err, inquiry.ErrPropertyGone):
			utils.JSONError(c, http.StatusNotFound, "property not found", "")
		default:
			utils.GetLogger().Error("Failed to create inquiry", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to create inquiry", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, inq)
}

// ListInquiriesHandler returns all inquiries for the admin dashboard.
func (h *InquiryHandler) ListInquiriesHandler(c *gin.Context) {
	inquiries, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list inquiries", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to get inquiries", err.Error())
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

// UpdateInquiryStatusHandler moves an inquiry through triage.
func (h *InquiryHandler) UpdateInquiryStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var req models.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	inq, err := h.Svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, inquiry.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "invalid status", "")
		case errors.Is(err, inquiry.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "inquiry not found", "")
		default:
			utils.GetLogger().Error("Failed to update inquiry", zap.String("id", id), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to update inquiry", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, inq)
}

// File: handlers/document.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentaldesk/models"
	"rentaldesk/services/document"
	"rentaldesk/utils"
)

type DocumentHandler struct {
	Svc document.DocumentService
}

func NewDocumentHandler(svc document.DocumentService) *DocumentHandler {
	return &DocumentHandler{Svc: svc}
}

// UploadDocumentHandler accepts a multipart upload and files it against a
// tenant and/or property.
func (h *DocumentHandler) UploadDocumentHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read file", err.Error())
		return
	}
	defer file.Close()

	req := document.UploadDocumentRequest{
		Title:      c.PostForm("title"),
		Type:       c.PostForm("type"),
		TenantID:   c.PostForm("tenantId"),
		PropertyID: c.PostForm("propertyId"),
		Filename:   fileHeader.Filename,
		File:       file,
	}

	doc, err := h.Svc.Upload(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, document.ErrInvalidInput) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		utils.GetLogger().Error("Failed to upload document", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload document", err.Error())
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// ListDocumentsHandler returns documents scoped to the caller: tenants see
// their own, admins see everything with optional filters.
func (h *DocumentHandler) ListDocumentsHandler(c *gin.Context) {
	claims, ok := claimsFromBearer(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
		return
	}

	var (
		docs []models.Document
		err  error
	)
	switch claims.Role {
	case "admin":
		docs, err = h.Svc.List(c.Request.Context(), c.Query("tenantId"), c.Query("propertyId"))
	case "tenant":
		docs, err = h.Svc.ListForTenant(c.Request.Context(), claims.Subject)
	default:
		utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
		return
	}
	if err != nil {
		utils.GetLogger().Error("Failed to list documents", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to get documents", err.Error())
		return
	}
	c.JSON(http.StatusOK, docs)
}

// DeleteDocumentHandler removes a document record and its stored file.
func (h *DocumentHandler) DeleteDocumentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, document.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "document not found", "")
			return
		}
		utils.GetLogger().Error("Failed to delete document", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete document", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "document deleted"})
}

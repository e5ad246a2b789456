// File: handlers/auth.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentaldesk/models"
	"rentaldesk/services/admin"
	"rentaldesk/utils"
)

type AuthHandler struct {
	Svc admin.AdminService
}

func NewAuthHandler(svc admin.AdminService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// claimsFromBearer validates the presented token, including the revocation
// check, and returns its claims. Used by endpoints shared between principals.
func claimsFromBearer(c *gin.Context) (*utils.TokenClaims, bool) {
	token, ok := bearerToken(c)
	if !ok {
		return nil, false
	}
	claims, err := utils.ExtractClaims(token)
	if err != nil {
		return nil, false
	}
	if utils.IsTokenRevoked(c.Request.Context(), utils.HashToken(token)) {
		return nil, false
	}
	return claims, true
}

// AdminLoginHandler authenticates a back-office user and issues a JWT.
func (h *AuthHandler) AdminLoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	token, adm, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		utils.GetLogger().Error("Admin login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "admin": adm})
}

// AdminVerifyHandler returns the admin behind the presented token.
func (h *AuthHandler) AdminVerifyHandler(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing bearer token", "")
		return
	}
	adm, err := h.Svc.Verify(c.Request.Context(), token)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "admin": adm})
}

// AdminLogoutHandler revokes the presented token.
func (h *AuthHandler) AdminLogoutHandler(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing bearer token", "")
		return
	}
	if err := h.Svc.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, admin.ErrInvalidToken) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token", "")
			return
		}
		utils.GetLogger().Error("Admin logout failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

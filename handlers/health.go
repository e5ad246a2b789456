// File: handlers/health.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rentaldesk/database"
	"rentaldesk/utils"
)

// HealthHandler reports liveness of the service and its backing stores.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"database": "ok", "cache": "ok"}

	if err := database.GetPool().Ping(ctx); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := utils.GetCacheClient().Ping(ctx).Err(); err != nil {
		checks["cache"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	body := gin.H{"status": "ok", "checks": checks}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	c.JSON(status, body)
}

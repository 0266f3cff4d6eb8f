package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"casaherenia/utils"
)

// HealthHandler reports liveness of the backing stores.
type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

// GetHealth handles GET /api/health.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	status := h.Monitor.Status()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetScheduler returns the pool size, queue length and task counters
// (GET /scheduler)
func (h *Handler) GetScheduler(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduler.Stats())
}

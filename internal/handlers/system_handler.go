package handlers

import (
	"net/http"

	"go-invoice-maker/internal/config"

	"github.com/gin-gonic/gin"
)

// SystemHandler reports liveness.
type SystemHandler struct {
	storeDriver string
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(storeDriver string) *SystemHandler {
	return &SystemHandler{storeDriver: storeDriver}
}

// --- GET: /health ---
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"store":   h.storeDriver,
		"version": config.Version,
	})
}

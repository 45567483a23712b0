package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// KommoHandler holds the outbound half of the Kommo integration, which is
// not built. Inbound events arrive through the webhook handler.
type KommoHandler struct{}

func NewKommoHandler() *KommoHandler {
	return &KommoHandler{}
}

func (h *KommoHandler) Push(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": "kommo push is not implemented", "code": "not_implemented"})
}

func (h *KommoHandler) Status(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "kommo integration is disabled", "code": "integration_disabled"})
}

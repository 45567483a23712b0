package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"masteria.app/panel/internal/service"
)

// AIHandler answers what is left of the in-panel AI endpoints. The agents
// themselves run in the external agent service.
type AIHandler struct {
	aiService service.AIService
}

func NewAIHandler(aiService service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

func (h *AIHandler) Orchestrator(c *gin.Context) {
	c.JSON(http.StatusOK, h.aiService.OrchestratorStatus(c.Request.Context()))
}

func (h *AIHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.aiService.AgentPerformance(c.Request.Context(), currentUser(c).CompanyID))
}

func (h *AIHandler) AgentsGone(c *gin.Context) {
	c.JSON(http.StatusGone, gin.H{
		"error":       "agent endpoints moved to the external agent service",
		"code":        "moved",
		"service_url": h.aiService.ServiceURL(),
	})
}

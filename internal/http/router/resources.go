package router

import (
	"github.com/gin-gonic/gin"

	"masteria.app/panel/internal/http/handler"
	"masteria.app/panel/internal/http/handler/webhook"
	"masteria.app/panel/internal/http/middleware"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.GET("", h.List)

	admin := rg.Group("", middleware.RequireAdmin())
	admin.POST("", h.Create)
	admin.PATCH("/:id", h.Update)
	admin.DELETE("/:id", h.Delete)
	admin.POST("/:id/active", h.SetActive)
}

func CompanyRouter(rg *gin.RouterGroup, h *handler.CompanyHandler) {
	rg.GET("", h.Get)

	admin := rg.Group("", middleware.RequireAdmin())
	admin.PATCH("", h.Update)
	admin.POST("/webhook-secret", h.RotateWebhookSecret)
}

func ConnectionRouter(rg *gin.RouterGroup, h *handler.ConnectionHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/active", h.SetActive)
}

func AutomationRouter(rg *gin.RouterGroup, h *handler.AutomationHandler) {
	// registered before /:id so "schema" is never read as an id
	rg.GET("/schema", h.Schema)

	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/active", h.SetActive)
	rg.GET("/:id/logs", h.Logs)
}

func CampaignRouter(rg *gin.RouterGroup, h *handler.CampaignHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/schedule", h.Schedule)
	rg.POST("/:id/cancel", h.Cancel)
}

func KommoRouter(rg *gin.RouterGroup, h *handler.KommoHandler) {
	rg.POST("/push", h.Push)
	rg.GET("/status", h.Status)
}

func AIRouter(rg *gin.RouterGroup, h *handler.AIHandler) {
	rg.GET("/orchestrator", h.Orchestrator)
	rg.GET("/metrics", h.Metrics)
	rg.Any("/agents/*path", h.AgentsGone)
}

func KnowledgeRouter(rg *gin.RouterGroup, h *handler.KnowledgeHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Add)
	rg.GET("/search", h.Search)
	rg.DELETE("/:id", h.Delete)
}

func MediaRouter(rg *gin.RouterGroup, h *handler.MediaHandler) {
	rg.POST("/upload-url", h.UploadURL)
}

// WebhookRouter is mounted outside the authenticated group; each handler
// checks its own shared secret.
func WebhookRouter(rg *gin.RouterGroup, kommo *webhook.KommoWebhookHandler) {
	rg.POST("/kommo/:company_id", kommo.HandleEvent)
}

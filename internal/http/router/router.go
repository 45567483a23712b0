package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"masteria.app/panel/internal/http/handler"
	"masteria.app/panel/internal/http/handler/webhook"
	"masteria.app/panel/internal/http/middleware"
	"masteria.app/panel/internal/service"
)

type RouterConfig struct {
	CookieName   string
	IsProduction bool
	PublicURL    string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authService := services.Auth()
	requireAuth := middleware.RequireAuth(authService, cfg.CookieName)

	authHandler := handler.NewAuthHandler(authService, services.PasswordReset(), handler.CookieConfig{
		Name:   cfg.CookieName,
		Secure: cfg.IsProduction,
	})
	AuthRouter(router.Group("/auth"), authHandler, requireAuth)

	kommoWebhook := webhook.NewKommoWebhookHandler(services.Kommo())
	WebhookRouter(router.Group("/webhooks"), kommoWebhook)

	v1 := router.Group("/api/v1", requireAuth)
	{
		UserRouter(v1.Group("/users"), handler.NewUserHandler(services.Users()))
		CompanyRouter(v1.Group("/company"), handler.NewCompanyHandler(services.Companies(), cfg.PublicURL))
		ConnectionRouter(v1.Group("/connections"), handler.NewConnectionHandler(services.Connections()))
		AutomationRouter(v1.Group("/automations"), handler.NewAutomationHandler(services.Automations()))

		campaignHandler := handler.NewCampaignHandler(services.Campaigns())
		CampaignRouter(v1.Group("/campaigns"), campaignHandler)
		v1.GET("/reports/campaigns", campaignHandler.Report)

		KommoRouter(v1.Group("/integrations/kommo"), handler.NewKommoHandler())
		AIRouter(v1.Group("/ai"), handler.NewAIHandler(services.AI()))
		KnowledgeRouter(v1.Group("/knowledge"), handler.NewKnowledgeHandler(services.Knowledge()))
		MediaRouter(v1.Group("/media"), handler.NewMediaHandler(services.Media()))
	}
}

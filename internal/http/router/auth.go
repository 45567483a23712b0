package router

import (
	"github.com/gin-gonic/gin"

	"masteria.app/panel/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireAuth gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", requireAuth, h.Me)

	rg.POST("/forgot-password", h.ForgotPassword)
	rg.GET("/reset-password/validate", h.ValidateResetToken)
	rg.POST("/reset-password", h.ResetPassword)
}

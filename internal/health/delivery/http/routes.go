package http

import (
	"github.com/gin-gonic/gin"

	"health-tracker/internal/middleware"
)

// RegisterRoutes maps the dashboard API. Read endpoints require a bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/verify", h.Verify)
	rg.GET("/health-logs", mw.Auth(), h.HealthLogs)
	rg.GET("/weekly-summary", mw.Auth(), h.WeeklySummary)
}

// RegisterWebhookRoutes maps the inbound message webhook behind the given guards.
func RegisterWebhookRoutes(r gin.IRouter, h Handler, guards ...gin.HandlerFunc) {
	handlers := make([]gin.HandlerFunc, 0, len(guards)+1)
	handlers = append(handlers, guards...)
	handlers = append(handlers, h.HandleMessage)
	r.POST("/webhook/message", handlers...)
}

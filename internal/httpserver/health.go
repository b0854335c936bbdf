package httpserver

import (
	"net/http"

	"health-tracker/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Health Tracker API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "health-tracker"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheckHandler reports ready once the storage backend answers.
// @Summary Readiness Check
// @Description Check if the API and its storage are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Storage unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheckHandler(c *gin.Context) {
	if srv.readyCheck != nil {
		if err := srv.readyCheck(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "internal.httpserver.ready: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not_ready",
				"service": ServiceName,
			})
			return
		}
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

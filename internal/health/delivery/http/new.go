package http

import (
	"github.com/gin-gonic/gin"

	"health-tracker/internal/health"
	"health-tracker/pkg/log"
)

// Handler is the public interface for the health HTTP delivery layer.
type Handler interface {
	HandleMessage(c *gin.Context)
	HealthLogs(c *gin.Context)
	WeeklySummary(c *gin.Context)
	Verify(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc health.UseCase
}

// New creates a new HTTP handler for the health domain.
func New(l log.Logger, uc health.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

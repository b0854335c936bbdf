package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	healthHTTP "health-tracker/internal/health/delivery/http"
	tgDelivery "health-tracker/internal/health/delivery/telegram"
	"health-tracker/internal/middleware"
	"health-tracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	readyCheck  func(ctx context.Context) error

	// Health domain
	healthHandler   healthHTTP.Handler
	telegramHandler tgDelivery.Handler
	webhookGuard    gin.HandlerFunc
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// ReadyCheck backs /ready, typically a storage ping. Optional.
	ReadyCheck func(ctx context.Context) error

	// Health domain
	HealthHandler   healthHTTP.Handler
	TelegramHandler tgDelivery.Handler // optional
	WebhookGuard    gin.HandlerFunc    // optional, wraps POST /webhook/message
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              middleware.New(logger),
		readyCheck:      cfg.ReadyCheck,
		healthHandler:   cfg.HealthHandler,
		telegramHandler: cfg.TelegramHandler,
		webhookGuard:    cfg.WebhookGuard,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.healthHandler == nil {
		return errors.New("health handler is required")
	}
	return nil
}

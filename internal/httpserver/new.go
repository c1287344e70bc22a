package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	scheduleHTTP "taskplanner/internal/schedule/delivery/http"
	"taskplanner/internal/middleware"
	"taskplanner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Schedule domain
	scheduleHandler scheduleHTTP.Handler
	mw              middleware.Middleware

	// Task-store webhook
	webhookHandler interface {
		HandleTaskStoreWebhook(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Schedule domain
	ScheduleHandler scheduleHTTP.Handler
	Middleware      middleware.Middleware

	// Task-store webhook (nil when disabled)
	WebhookHandler interface {
		HandleTaskStoreWebhook(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		scheduleHandler: cfg.ScheduleHandler,
		mw:              cfg.Middleware,
		webhookHandler:  cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scheduleHandler == nil {
		return errors.New("schedule handler is required")
	}
	return nil
}

package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github-workflow-automation/pkg/log"
)

const (
	DefaultWebhookPath     = "/webhook"
	DefaultShutdownTimeout = 30 * time.Second
)

// WebhookHandler serves the inbound GitHub delivery route.
type WebhookHandler interface {
	HandleGitHubWebhook(c *gin.Context)
}

// Drainer blocks until background work started by requests has finished.
type Drainer interface {
	Wait()
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Webhook
	webhookPath    string
	webhookHandler WebhookHandler
	drainer        Drainer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	WebhookPath    string
	WebhookHandler WebhookHandler

	// Drainer is waited on after the listener stops, usually the merge notifier.
	Drainer Drainer
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
		shutdownTimeout: cfg.ShutdownTimeout,
		webhookPath:     cfg.WebhookPath,
		webhookHandler:  cfg.WebhookHandler,
		drainer:         cfg.Drainer,
	}
	if srv.webhookPath == "" {
		srv.webhookPath = DefaultWebhookPath
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = DefaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

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
	if srv.webhookHandler == nil {
		return errors.New("webhook handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

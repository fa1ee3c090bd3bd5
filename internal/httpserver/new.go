package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tasktracker-webui/internal/middleware"
	formHTTP "tasktracker-webui/internal/task/delivery/http"
	"tasktracker-webui/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin          *gin.Engine
	l            log.Logger
	port         int
	mode         string
	environment  string
	templateGlob string
	corsOrigins  []string

	mw middleware.Middleware

	// Task form domain
	formHandler formHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger       log.Logger
	Port         int
	Mode         string
	Environment  string
	TemplateGlob string
	CORSOrigins  []string

	Middleware middleware.Middleware

	// Task form domain
	FormHandler formHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		templateGlob: cfg.TemplateGlob,
		corsOrigins:  cfg.CORSOrigins,
		mw:           cfg.Middleware,
		formHandler:  cfg.FormHandler,
	}

	if err := srv.validate(); err != nil {
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
	if srv.formHandler == nil {
		return errors.New("form handler is required")
	}
	if srv.templateGlob == "" {
		return errors.New("template glob is required")
	}
	return nil
}

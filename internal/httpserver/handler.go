package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tasktracker-webui/internal/model"
	formHTTP "tasktracker-webui/internal/task/delivery/http"
	"tasktracker-webui/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.gin.LoadHTMLGlob(srv.templateGlob)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Logger())
	srv.gin.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		srv.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.InternalError(c, fmt.Errorf("%v", recovered))
	}))

	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.corsMiddleware())
	srv.gin.Use(srv.mw.RateLimit())
}

// corsMiddleware builds the CORS policy: restricted to the configured
// origins when a list is set, permissive otherwise.
func (srv HTTPServer) corsMiddleware() gin.HandlerFunc {
	ctx := context.Background()

	if len(srv.corsOrigins) > 0 {
		srv.l.Infof(ctx, "CORS mode: restricted to %v", srv.corsOrigins)
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = srv.corsOrigins
		return cors.New(cfg)
	}

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Warnf(ctx, "CORS mode: production without an origin list, allowing all")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
	return cors.Default()
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	formHTTP.RegisterRoutes(srv.gin.Group("/"), srv.formHandler)
	srv.l.Infof(ctx, "Task form registered at GET / and POST /")

	return nil
}

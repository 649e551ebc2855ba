// Package http wires the gin engine, middleware chain and route table.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/healthpredict/healthpredict/internal/application/service"
	"github.com/healthpredict/healthpredict/internal/config"
	"github.com/healthpredict/healthpredict/internal/infrastructure/monitoring"
	"github.com/healthpredict/healthpredict/internal/interfaces/http/handlers"
	"github.com/healthpredict/healthpredict/internal/interfaces/http/middleware"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

// Router owns the gin engine and the HTTP server lifecycle.
type Router struct {
	engine  *gin.Engine
	config  *config.Config
	logger  logger.Logger
	server  *http.Server
	auth    service.AuthAppService
	metrics *monitoring.Metrics
	tracing *monitoring.TracingManager

	healthHandler     *handlers.HealthHandler
	authHandler       *handlers.AuthHandler
	assessmentHandler *handlers.AssessmentHandler
	chatHandler       *handlers.ChatHandler
	historyHandler    *handlers.HistoryHandler
	adminHandler      *handlers.AdminHandler
}

// NewRouter creates the router with all handler dependencies.
func NewRouter(
	cfg *config.Config,
	log logger.Logger,
	auth service.AuthAppService,
	metrics *monitoring.Metrics,
	tracing *monitoring.TracingManager,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	assessmentHandler *handlers.AssessmentHandler,
	chatHandler *handlers.ChatHandler,
	historyHandler *handlers.HistoryHandler,
	adminHandler *handlers.AdminHandler,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	return &Router{
		engine:            gin.New(),
		config:            cfg,
		logger:            log,
		auth:              auth,
		metrics:           metrics,
		tracing:           tracing,
		healthHandler:     healthHandler,
		authHandler:       authHandler,
		assessmentHandler: assessmentHandler,
		chatHandler:       chatHandler,
		historyHandler:    historyHandler,
		adminHandler:      adminHandler,
	}
}

// SetupRoutes installs the middleware chain and the route table.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logging(r.logger))
	if r.metrics != nil {
		r.engine.Use(middleware.Metrics(r.metrics))
	}
	if r.tracing != nil {
		r.engine.Use(middleware.Tracing(r.tracing))
	}

	corsConfig := cors.Config{
		AllowOrigins:     r.config.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.engine.Use(cors.New(corsConfig))

	r.engine.GET("/health/live", r.healthHandler.Live)
	r.engine.GET("/health/ready", r.healthHandler.Ready)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if r.config.Server.EnablePprof {
		pprof.Register(r.engine)
	}

	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
		}

		assess := v1.Group("/assess")
		assess.Use(middleware.OptionalAuth(r.auth))
		{
			assess.POST("/heart", r.assessmentHandler.Heart)
			assess.POST("/diabetes", r.assessmentHandler.Diabetes)
			assess.POST("/parkinsons", r.assessmentHandler.Parkinsons)
		}

		chat := v1.Group("/chat")
		chat.Use(middleware.OptionalAuth(r.auth))
		{
			chat.POST("/medical", r.chatHandler.Medical)
			chat.POST("/triage", r.chatHandler.Triage)
		}

		v1.GET("/history", middleware.RequireAuth(r.auth), r.historyHandler.List)

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAuth(r.auth), middleware.RequireAdmin())
		{
			admin.GET("/stats", r.adminHandler.Stats)
		}
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":             "not_found",
			"error_description": "The requested resource was not found",
		})
	})
}

// Engine exposes the configured engine, used by tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Start runs the HTTP server until it is shut down.
func (r *Router) Start() error {
	r.SetupRoutes()

	r.server = &http.Server{
		Addr:           r.config.Server.Addr(),
		Handler:        r.engine,
		ReadTimeout:    time.Duration(r.config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(r.config.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	r.logger.Info(context.Background(), "starting HTTP server", logger.Fields{"addr": r.server.Addr})
	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the HTTP server down gracefully.
func (r *Router) Stop(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	r.logger.Info(ctx, "stopping HTTP server")
	return r.server.Shutdown(ctx)
}

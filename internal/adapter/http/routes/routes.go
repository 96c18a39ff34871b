package routes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cfr_notifier/docs" // swag init output
	"cfr_notifier/internal/adapter/http/handlers"
	"cfr_notifier/internal/config"
	"cfr_notifier/internal/infrastructure/app"
	"cfr_notifier/internal/infrastructure/logging"
	"cfr_notifier/internal/infrastructure/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies is everything the router needs from the container.
type Dependencies struct {
	Notification *handlers.NotificationHandler
	Messaging    *handlers.MessagingHandler
	Geocode      *handlers.GeocodeHandler
	Client       *handlers.ClientHandler
	Metrics      *metrics.Metrics

	AllowedOrigins []string
	Logger         *slog.Logger
}

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("[app][http] failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.LogLevel)
	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("[app][http] failed to build application", "error", err)
		os.Exit(1)
	}

	router := NewRouter(Dependencies{
		Notification:   c.NotificationHandler,
		Messaging:      c.MessagingHandler,
		Geocode:        c.GeocodeHandler,
		Client:         c.ClientHandler,
		Metrics:        c.Metrics,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("[app][http] server listening", "port", cfg.Server.Port, "env", cfg.Environment)
		logRoutes(logger, router)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("[app][http] failed to startup the application", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("[app][http] graceful shutdown failed", "error", err)
		return
	}
	logger.Info("[app][http] server stopped")
}

func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	addPingRoutes(&router.RouterGroup)

	api := router.Group(PathAPI)
	addClientRoutes(api, deps.Client)
	addMessagingRoutes(api, deps.Messaging, deps.Geocode)
	addNotificationRoutes(api, deps.Notification)

	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		deps.Logger.Error("[app][http] recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.GinMiddleware())
	}
	router.Use(cors.New(corsConfig(deps.AllowedOrigins)))
}

// corsConfig allows only the listed origins. Requests without an Origin
// header (curl, server-to-server, the Lambda) pass through.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowOriginFunc = func(string) bool { return false }
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

func logRoutes(logger *slog.Logger, router *gin.Engine) {
	for _, r := range router.Routes() {
		logger.Info("[app][http] endpoint", "method", r.Method, "path", r.Path)
	}
}

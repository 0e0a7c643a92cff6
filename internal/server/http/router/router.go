package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mentorcrm/internal/config"
	"github.com/polkiloo/mentorcrm/internal/server/http/handlers"
	"github.com/polkiloo/mentorcrm/internal/server/http/middleware"
)

const (
	streamPath       = "/api/ws"
	maxInflatedBytes = 1 << 20
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CRMFacade, stream handlers.StreamServer, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORS(cfg.CORSOrigins))
	engine.Use(middleware.DecompressRequest(maxInflatedBytes))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{streamPath})))

	authHandler := handlers.NewAuthHandler(facade)
	syncHandler := handlers.NewSyncHandler(facade, stream, logger)
	customerHandler := handlers.NewCustomerHandler(facade)
	taskHandler := handlers.NewTaskHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)
	settingsHandler := handlers.NewSettingsHandler(facade)

	api := engine.Group("/api")
	api.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/me", authHandler.Me)
	authed.POST("/profile", authHandler.Profile)

	authed.GET("/snapshot", syncHandler.Snapshot)
	authed.POST("/sync", syncHandler.Resync)
	authed.GET("/ws", syncHandler.Stream)

	authed.PUT("/customers/:id", customerHandler.Update)
	authed.POST("/customers/assign", customerHandler.Assign)
	authed.POST("/customers/unassign", customerHandler.Unassign)

	authed.POST("/tasks", taskHandler.Save)
	authed.POST("/products", catalogHandler.CreateProduct)
	authed.POST("/operators", catalogHandler.CreateOperator)

	authed.POST("/orders", orderHandler.Submit)
	authed.POST("/orders/status", orderHandler.ChangeStatus)

	statsGroup := authed.Group("/stats")
	statsGroup.GET("/sales", statsHandler.Sales)
	statsGroup.GET("/rankings", statsHandler.Rankings)
	statsGroup.GET("/inactive", statsHandler.Inactive)
	statsGroup.GET("/urgent-orders", statsHandler.UrgentOrders)
	statsGroup.GET("/tasks", statsHandler.Tasks)
	statsGroup.GET("/reports", statsHandler.Reports)

	settingsGroup := authed.Group("/settings")
	settingsGroup.GET("/endpoints", settingsHandler.Endpoints)
	settingsGroup.PUT("/endpoints", settingsHandler.SetEndpoints)
	settingsGroup.GET("/stages", settingsHandler.Stages)
	settingsGroup.POST("/stages", settingsHandler.AddStage)
	settingsGroup.DELETE("/stages/:name", settingsHandler.RemoveStage)

	return engine
}

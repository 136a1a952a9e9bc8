package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/grubdash/internal/server/http/handlers"
	"github.com/polkiloo/grubdash/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.OrderFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.OmitEncodingWithoutBody())

	orderHandler := handlers.NewOrderHandler(facade)

	orders := engine.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/:"+handlers.OrderIDParam, orderHandler.Read)
	orders.PUT("/:"+handlers.OrderIDParam, orderHandler.Update)
	orders.DELETE("/:"+handlers.OrderIDParam, orderHandler.Delete)

	engine.NoMethod(handlers.MethodNotAllowed)
	engine.NoRoute(handlers.NotFound)

	return engine
}

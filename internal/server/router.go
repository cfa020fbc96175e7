package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/plasmahub/plasma-builder-backend/internal/http/handlers"
)

type RouterConfig struct {
	ServiceName         string
	AllowOrigins        []string
	HealthHandler       *handlers.HealthHandler
	DesignSystemHandler *handlers.DesignSystemHandler
	ComponentHandler    *handlers.ComponentHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(cors.New(corsConfig(cfg.AllowOrigins)))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/design-systems", cfg.DesignSystemHandler.List)
		api.GET("/design-systems/:id/export", cfg.DesignSystemHandler.Export)
		api.GET("/design-systems/:id/client", cfg.DesignSystemHandler.GetClientPayload)
		api.POST("/design-systems/import", cfg.DesignSystemHandler.Import)
		api.DELETE("/design-systems/:id/export-cache", cfg.DesignSystemHandler.InvalidateExport)

		api.GET("/components", cfg.ComponentHandler.List)
		api.GET("/design-systems/:id/components/:componentId/meta", cfg.ComponentHandler.GetMeta)
	}

	return router
}

// ProxyRouterConfig wires the client-proxy blob service.
type ProxyRouterConfig struct {
	ServiceName   string
	AllowOrigins  []string
	HealthHandler *handlers.HealthHandler
	ProxyHandler  *handlers.ProxyHandler
}

func NewProxyRouter(cfg ProxyRouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(cors.New(corsConfig(cfg.AllowOrigins)))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/files", cfg.ProxyHandler.List)
		api.GET("/files/:name/:version", cfg.ProxyHandler.Load)
		api.PUT("/files/:name/:version", cfg.ProxyHandler.Save)
		api.DELETE("/files/:name/:version", cfg.ProxyHandler.Remove)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}
}

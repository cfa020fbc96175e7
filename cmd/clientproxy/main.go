package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/plasmahub/plasma-builder-backend/internal/http/handlers"
	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/observability"
	"github.com/plasmahub/plasma-builder-backend/internal/server"
	"github.com/plasmahub/plasma-builder-backend/internal/store"
	"github.com/plasmahub/plasma-builder-backend/internal/utils"
)

// clientproxy is the standalone persistence shim the editor talks to: it
// stores serialized design system blobs on disk, keyed by name and version.
func main() {
	_ = godotenv.Load()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	shutdownOTel := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "plasma-client-proxy",
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
	})
	defer func() {
		if err := shutdownOTel(ctx); err != nil {
			log.Warn("OTel shutdown failed", "error", err)
		}
	}()

	dataDir := utils.GetEnv("PROXY_DATA_DIR", "data/design-systems", log)
	blobs, err := store.NewFileStore(dataDir, log)
	if err != nil {
		log.Error("Failed to open blob store", "dir", dataDir, "error", err)
		os.Exit(1)
	}

	router := server.NewProxyRouter(server.ProxyRouterConfig{
		ServiceName:   "plasma-client-proxy",
		HealthHandler: handlers.NewHealthHandler(),
		ProxyHandler:  handlers.NewProxyHandler(log, blobs),
	})

	port := utils.GetEnv("PROXY_PORT", "8081", log)
	log.Info("Client proxy listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Client proxy failed", "error", err)
		os.Exit(1)
	}
}

package app

import (
	"github.com/plasmahub/plasma-builder-backend/internal/http/handlers"
	"github.com/plasmahub/plasma-builder-backend/internal/logger"
)

type Handlers struct {
	Health        *handlers.HealthHandler
	DesignSystems *handlers.DesignSystemHandler
	Components    *handlers.ComponentHandler
}

func wireHandlers(log *logger.Logger, svcs Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:        handlers.NewHealthHandler(),
		DesignSystems: handlers.NewDesignSystemHandler(log, svcs.DesignSystems),
		Components:    handlers.NewComponentHandler(log, svcs.Components),
	}
}

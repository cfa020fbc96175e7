package app

import (
	"gorm.io/gorm"

	"github.com/plasmahub/plasma-builder-backend/internal/cache"
	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/services"
	"github.com/plasmahub/plasma-builder-backend/internal/transformer"
)

type Services struct {
	DesignSystems services.DesignSystemService
	Components    services.ComponentService
}

func wireServices(
	db *gorm.DB,
	log *logger.Logger,
	cfg Config,
	trans *transformer.FormatTransformer,
	exportCache *cache.ExportCache,
	repos Repos,
) Services {
	log.Info("Wiring services...")
	designSystems := services.NewDesignSystemService(
		db,
		log,
		trans,
		exportCache,
		cfg.APIBaseURL,
		repos.DesignSystems,
		repos.Components,
		repos.Tokens,
		repos.Variations,
		repos.TokenValues,
		repos.PropsAPI,
	)
	components := services.NewComponentService(db, log, trans, designSystems, repos.Components)
	return Services{
		DesignSystems: designSystems,
		Components:    components,
	}
}

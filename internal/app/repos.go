package app

import (
	"gorm.io/gorm"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/repos"
)

type Repos struct {
	DesignSystems repos.DesignSystemRepo
	Components    repos.ComponentRepo
	Tokens        repos.TokenRepo
	Variations    repos.VariationRepo
	TokenValues   repos.TokenValueRepo
	PropsAPI      repos.PropsAPIRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		DesignSystems: repos.NewDesignSystemRepo(db, log),
		Components:    repos.NewComponentRepo(db, log),
		Tokens:        repos.NewTokenRepo(db, log),
		Variations:    repos.NewVariationRepo(db, log),
		TokenValues:   repos.NewTokenValueRepo(db, log),
		PropsAPI:      repos.NewPropsAPIRepo(db, log),
	}
}

package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/plasmahub/plasma-builder-backend/internal/builder"
	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/meta"
	"github.com/plasmahub/plasma-builder-backend/internal/repos"
	"github.com/plasmahub/plasma-builder-backend/internal/transformer"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

// ComponentService serves single components to the editor: their client-side
// Meta, and the Config facade built from it.
type ComponentService interface {
	List(ctx context.Context) ([]*types.Component, error)
	GetMeta(ctx context.Context, designSystemID, componentID uint) (meta.ComponentData, transformer.Report, error)
	BuildConfig(ctx context.Context, designSystemID, componentID uint) (*builder.Config, error)
}

type componentService struct {
	db    *gorm.DB
	log   *logger.Logger
	trans *transformer.FormatTransformer

	designSystems DesignSystemService
	components    repos.ComponentRepo
}

func NewComponentService(
	db *gorm.DB,
	baseLog *logger.Logger,
	trans *transformer.FormatTransformer,
	designSystems DesignSystemService,
	components repos.ComponentRepo,
) ComponentService {
	return &componentService{
		db:            db,
		log:           baseLog.With("service", "ComponentService"),
		trans:         trans,
		designSystems: designSystems,
		components:    components,
	}
}

func (s *componentService) List(ctx context.Context) ([]*types.Component, error) {
	return s.components.List(ctx, nil)
}

// GetMeta transforms the whole design system and picks one component out of
// it. The transform is per-system because token and variation ids are only
// consistent within one transform pass.
func (s *componentService) GetMeta(ctx context.Context, designSystemID, componentID uint) (meta.ComponentData, transformer.Report, error) {
	rows, err := s.components.GetByIDs(ctx, nil, []uint{componentID})
	if err != nil {
		return meta.ComponentData{}, transformer.Report{}, err
	}
	if len(rows) == 0 {
		return meta.ComponentData{}, transformer.Report{}, fmt.Errorf("component %d not found", componentID)
	}

	payload, rep, err := s.designSystems.GetClientPayload(ctx, designSystemID)
	if err != nil {
		return meta.ComponentData{}, rep, err
	}
	for _, cd := range payload.ComponentsData {
		if cd.Name == rows[0].Name {
			return cd, rep, nil
		}
	}
	return meta.ComponentData{}, rep, fmt.Errorf("component %d not part of design system %d", componentID, designSystemID)
}

// BuildConfig loads a component's Meta and constructs the editor facade for
// its stored configuration.
func (s *componentService) BuildConfig(ctx context.Context, designSystemID, componentID uint) (*builder.Config, error) {
	cd, _, err := s.GetMeta(ctx, designSystemID, componentID)
	if err != nil {
		return nil, err
	}
	return builder.NewConfig(cd.Meta(), builder.Selector{Name: cd.Name}), nil
}

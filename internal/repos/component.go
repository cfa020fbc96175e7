package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

type ComponentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, components []*types.Component) ([]*types.Component, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.Component, error)
	GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.Component, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Component, error)
	Update(ctx context.Context, tx *gorm.DB, component *types.Component) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type componentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewComponentRepo(db *gorm.DB, baseLog *logger.Logger) ComponentRepo {
	repoLog := baseLog.With("repo", "ComponentRepo")
	return &componentRepo{db: db, log: repoLog}
}

func (cr *componentRepo) Create(ctx context.Context, tx *gorm.DB, components []*types.Component) ([]*types.Component, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(components) == 0 {
		return []*types.Component{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

func (cr *componentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.Component, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Component
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *componentRepo) GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.Component, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Component
	if len(names) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("name IN ?", names).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *componentRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Component, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Component
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *componentRepo) Update(ctx context.Context, tx *gorm.DB, component *types.Component) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Save(component).Error
}

func (cr *componentRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Delete(&types.Component{}, id).Error
}

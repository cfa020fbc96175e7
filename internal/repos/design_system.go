package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

type DesignSystemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, systems []*types.DesignSystem) ([]*types.DesignSystem, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.DesignSystem, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.DesignSystem, error)
	Update(ctx context.Context, tx *gorm.DB, system *types.DesignSystem) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	LinkComponents(ctx context.Context, tx *gorm.DB, links []*types.DesignSystemComponent) error
	GetComponentIDs(ctx context.Context, tx *gorm.DB, designSystemID uint) ([]uint, error)
}

type designSystemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDesignSystemRepo(db *gorm.DB, baseLog *logger.Logger) DesignSystemRepo {
	repoLog := baseLog.With("repo", "DesignSystemRepo")
	return &designSystemRepo{db: db, log: repoLog}
}

func (dr *designSystemRepo) Create(ctx context.Context, tx *gorm.DB, systems []*types.DesignSystem) ([]*types.DesignSystem, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	if len(systems) == 0 {
		return []*types.DesignSystem{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&systems).Error; err != nil {
		return nil, err
	}
	return systems, nil
}

func (dr *designSystemRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*types.DesignSystem, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var results []*types.DesignSystem
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

func (dr *designSystemRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.DesignSystem, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var results []*types.DesignSystem
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *designSystemRepo) Update(ctx context.Context, tx *gorm.DB, system *types.DesignSystem) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	return transaction.WithContext(ctx).Save(system).Error
}

func (dr *designSystemRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	if err := transaction.WithContext(ctx).
		Where("design_system_id = ?", id).
		Delete(&types.DesignSystemComponent{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(&types.DesignSystem{}, id).Error
}

func (dr *designSystemRepo) LinkComponents(ctx context.Context, tx *gorm.DB, links []*types.DesignSystemComponent) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	if len(links) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&links).Error
}

func (dr *designSystemRepo) GetComponentIDs(ctx context.Context, tx *gorm.DB, designSystemID uint) ([]uint, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var ids []uint
	if err := transaction.WithContext(ctx).
		Model(&types.DesignSystemComponent{}).
		Where("design_system_id = ?", designSystemID).
		Pluck("component_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

type VariationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, variations []*types.Variation) ([]*types.Variation, error)
	GetByComponentIDs(ctx context.Context, tx *gorm.DB, componentIDs []uint) ([]*types.Variation, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CreateValues(ctx context.Context, tx *gorm.DB, values []*types.VariationValue) ([]*types.VariationValue, error)
	GetValuesByComponentIDs(ctx context.Context, tx *gorm.DB, componentIDs []uint) ([]*types.VariationValue, error)
	DeleteValue(ctx context.Context, tx *gorm.DB, id uint) error
}

type variationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVariationRepo(db *gorm.DB, baseLog *logger.Logger) VariationRepo {
	repoLog := baseLog.With("repo", "VariationRepo")
	return &variationRepo{db: db, log: repoLog}
}

func (vr *variationRepo) Create(ctx context.Context, tx *gorm.DB, variations []*types.Variation) ([]*types.Variation, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	if len(variations) == 0 {
		return []*types.Variation{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&variations).Error; err != nil {
		return nil, err
	}
	return variations, nil
}

func (vr *variationRepo) GetByComponentIDs(ctx context.Context, tx *gorm.DB, componentIDs []uint) ([]*types.Variation, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*types.Variation
	if len(componentIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("component_id IN ?", componentIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *variationRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if err := transaction.WithContext(ctx).
		Where("variation_id = ?", id).
		Delete(&types.VariationValue{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(&types.Variation{}, id).Error
}

func (vr *variationRepo) CreateValues(ctx context.Context, tx *gorm.DB, values []*types.VariationValue) ([]*types.VariationValue, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	if len(values) == 0 {
		return []*types.VariationValue{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

func (vr *variationRepo) GetValuesByComponentIDs(ctx context.Context, tx *gorm.DB, componentIDs []uint) ([]*types.VariationValue, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	var results []*types.VariationValue
	if len(componentIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("component_id IN ?", componentIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *variationRepo) DeleteValue(ctx context.Context, tx *gorm.DB, id uint) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if err := transaction.WithContext(ctx).
		Where("variation_value_id = ?", id).
		Delete(&types.TokenValue{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(&types.VariationValue{}, id).Error
}

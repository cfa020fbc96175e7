package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

type PropsAPIRepo interface {
	Create(ctx context.Context, tx *gorm.DB, props []*types.PropsAPI) ([]*types.PropsAPI, error)
	GetByComponentIDs(ctx context.Context, tx *gorm.DB, componentIDs []uint) ([]*types.PropsAPI, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type propsAPIRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPropsAPIRepo(db *gorm.DB, baseLog *logger.Logger) PropsAPIRepo {
	repoLog := baseLog.With("repo", "PropsAPIRepo")
	return &propsAPIRepo{db: db, log: repoLog}
}

func (pr *propsAPIRepo) Create(ctx context.Context, tx *gorm.DB, props []*types.PropsAPI) ([]*types.PropsAPI, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(props) == 0 {
		return []*types.PropsAPI{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&props).Error; err != nil {
		return nil, err
	}
	return props, nil
}

func (pr *propsAPIRepo) GetByComponentIDs(ctx context.Context, tx *gorm.DB, componentIDs []uint) ([]*types.PropsAPI, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.PropsAPI
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

func (pr *propsAPIRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Delete(&types.PropsAPI{}, id).Error
}

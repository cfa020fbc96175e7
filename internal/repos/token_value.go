package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

type TokenValueRepo interface {
	Create(ctx context.Context, tx *gorm.DB, values []*types.TokenValue) ([]*types.TokenValue, error)
	GetByComponentIDs(ctx context.Context, tx *gorm.DB, componentIDs []uint) ([]*types.TokenValue, error)
	CreateInvariants(ctx context.Context, tx *gorm.DB, values []*types.InvariantTokenValue) ([]*types.InvariantTokenValue, error)
	GetInvariantsByComponentIDs(ctx context.Context, tx *gorm.DB, componentIDs []uint) ([]*types.InvariantTokenValue, error)
}

type tokenValueRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTokenValueRepo(db *gorm.DB, baseLog *logger.Logger) TokenValueRepo {
	repoLog := baseLog.With("repo", "TokenValueRepo")
	return &tokenValueRepo{db: db, log: repoLog}
}

func (tr *tokenValueRepo) Create(ctx context.Context, tx *gorm.DB, values []*types.TokenValue) ([]*types.TokenValue, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(values) == 0 {
		return []*types.TokenValue{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

func (tr *tokenValueRepo) GetByComponentIDs(ctx context.Context, tx *gorm.DB, componentIDs []uint) ([]*types.TokenValue, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.TokenValue
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

func (tr *tokenValueRepo) CreateInvariants(ctx context.Context, tx *gorm.DB, values []*types.InvariantTokenValue) ([]*types.InvariantTokenValue, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(values) == 0 {
		return []*types.InvariantTokenValue{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

func (tr *tokenValueRepo) GetInvariantsByComponentIDs(ctx context.Context, tx *gorm.DB, componentIDs []uint) ([]*types.InvariantTokenValue, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.InvariantTokenValue
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

package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

type TokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tokens []*types.Token) ([]*types.Token, error)
	GetByComponentIDs(ctx context.Context, tx *gorm.DB, componentIDs []uint) ([]*types.Token, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CreateTokenVariations(ctx context.Context, tx *gorm.DB, links []*types.TokenVariation) error
	GetTokenVariationsByVariationIDs(ctx context.Context, tx *gorm.DB, variationIDs []uint) ([]*types.TokenVariation, error)
}

type tokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTokenRepo(db *gorm.DB, baseLog *logger.Logger) TokenRepo {
	repoLog := baseLog.With("repo", "TokenRepo")
	return &tokenRepo{db: db, log: repoLog}
}

func (tr *tokenRepo) Create(ctx context.Context, tx *gorm.DB, tokens []*types.Token) ([]*types.Token, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(tokens) == 0 {
		return []*types.Token{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (tr *tokenRepo) GetByComponentIDs(ctx context.Context, tx *gorm.DB, componentIDs []uint) ([]*types.Token, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.Token
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

func (tr *tokenRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).
		Where("token_id = ?", id).
		Delete(&types.TokenVariation{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(&types.Token{}, id).Error
}

func (tr *tokenRepo) CreateTokenVariations(ctx context.Context, tx *gorm.DB, links []*types.TokenVariation) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if len(links) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&links).Error
}

func (tr *tokenRepo) GetTokenVariationsByVariationIDs(ctx context.Context, tx *gorm.DB, variationIDs []uint) ([]*types.TokenVariation, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.TokenVariation
	if len(variationIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("variation_id IN ?", variationIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

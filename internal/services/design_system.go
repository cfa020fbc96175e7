package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/plasmahub/plasma-builder-backend/internal/cache"
	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/meta"
	"github.com/plasmahub/plasma-builder-backend/internal/repos"
	"github.com/plasmahub/plasma-builder-backend/internal/transformer"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

// DesignSystemService assembles full design systems from rows: the export
// wire payload, the client payload for the editor, and the reverse import
// path that persists an edited client payload back into rows.
type DesignSystemService interface {
	List(ctx context.Context) ([]*types.DesignSystem, error)
	Export(ctx context.Context, designSystemID uint) ([]byte, error)
	GetClientPayload(ctx context.Context, designSystemID uint) (meta.ClientPayload, transformer.Report, error)
	ImportClientPayload(ctx context.Context, payload meta.ClientPayload) (uint, transformer.Report, error)
	InvalidateExport(ctx context.Context, designSystemID uint)
}

type designSystemService struct {
	db          *gorm.DB
	log         *logger.Logger
	trans       *transformer.FormatTransformer
	exportCache *cache.ExportCache
	apiBaseURL  string

	designSystems repos.DesignSystemRepo
	components    repos.ComponentRepo
	tokens        repos.TokenRepo
	variations    repos.VariationRepo
	tokenValues   repos.TokenValueRepo
	propsAPI      repos.PropsAPIRepo
}

func NewDesignSystemService(
	db *gorm.DB,
	baseLog *logger.Logger,
	trans *transformer.FormatTransformer,
	exportCache *cache.ExportCache,
	apiBaseURL string,
	designSystems repos.DesignSystemRepo,
	components repos.ComponentRepo,
	tokens repos.TokenRepo,
	variations repos.VariationRepo,
	tokenValues repos.TokenValueRepo,
	propsAPI repos.PropsAPIRepo,
) DesignSystemService {
	return &designSystemService{
		db:            db,
		log:           baseLog.With("service", "DesignSystemService"),
		trans:         trans,
		exportCache:   exportCache,
		apiBaseURL:    apiBaseURL,
		designSystems: designSystems,
		components:    components,
		tokens:        tokens,
		variations:    variations,
		tokenValues:   tokenValues,
		propsAPI:      propsAPI,
	}
}

func (s *designSystemService) List(ctx context.Context) ([]*types.DesignSystem, error) {
	return s.designSystems.List(ctx, nil)
}

// Export renders the wire payload for a design system, cached by id.
func (s *designSystemService) Export(ctx context.Context, designSystemID uint) ([]byte, error) {
	key := exportKey(designSystemID)
	return s.exportCache.GetOrBuild(ctx, key, func(ctx context.Context) ([]byte, error) {
		data, err := s.loadBackendData(ctx, designSystemID)
		if err != nil {
			return nil, err
		}
		payload := types.ExportPayload{
			Timestamp:            time.Now().UTC().Format(time.RFC3339Nano),
			DesignSystem:         data.DesignSystem,
			Components:           data.Components,
			VariationValues:      data.VariationValues,
			TokenValues:          data.TokenValues,
			InvariantTokenValues: data.InvariantTokenValues,
			Metadata: types.ExportMetadata{
				DesignSystemID:       data.DesignSystem.ID,
				DesignSystemName:     data.DesignSystem.Name,
				TotalComponents:      len(data.Components),
				TotalVariations:      len(data.Variations),
				TotalVariationValues: len(data.VariationValues),
				TotalTokens:          len(data.Tokens),
				TotalTokenValues:     len(data.TokenValues),
				TotalPropsAPI:        len(data.PropsAPI),
				APIBaseURL:           s.apiBaseURL,
			},
		}
		return json.Marshal(payload)
	})
}

// GetClientPayload loads the rows and runs the forward transform.
func (s *designSystemService) GetClientPayload(ctx context.Context, designSystemID uint) (meta.ClientPayload, transformer.Report, error) {
	data, err := s.loadBackendData(ctx, designSystemID)
	if err != nil {
		return meta.ClientPayload{}, transformer.Report{}, err
	}
	payload, rep := s.trans.TransformBackendToClient(data)
	for _, w := range rep.Warnings {
		s.log.Warn("Transform warning", "designSystemID", designSystemID, "warning", w)
	}
	return payload, rep, nil
}

// ImportClientPayload runs the reverse transform and persists every row in
// one transaction, finishing the invariant-prop conversion with the token-id
// map the transformer hands back.
func (s *designSystemService) ImportClientPayload(ctx context.Context, payload meta.ClientPayload) (uint, transformer.Report, error) {
	result, rep := s.trans.TransformClientToBackend(payload)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		system := result.DesignSystem
		if _, err := s.designSystems.Create(ctx, tx, []*types.DesignSystem{&system}); err != nil {
			return fmt.Errorf("create design system: %w", err)
		}
		if _, err := s.components.Create(ctx, tx, asPtrs(result.Components)); err != nil {
			return fmt.Errorf("create components: %w", err)
		}
		if err := s.designSystems.LinkComponents(ctx, tx, asPtrs(result.DesignSystemComponents)); err != nil {
			return fmt.Errorf("link components: %w", err)
		}
		if _, err := s.tokens.Create(ctx, tx, asPtrs(result.Tokens)); err != nil {
			return fmt.Errorf("create tokens: %w", err)
		}
		if _, err := s.variations.Create(ctx, tx, asPtrs(result.Variations)); err != nil {
			return fmt.Errorf("create variations: %w", err)
		}
		if err := s.tokens.CreateTokenVariations(ctx, tx, asPtrs(result.TokenVariations)); err != nil {
			return fmt.Errorf("create token variations: %w", err)
		}
		if _, err := s.variations.CreateValues(ctx, tx, asPtrs(result.VariationValues)); err != nil {
			return fmt.Errorf("create variation values: %w", err)
		}
		if _, err := s.tokenValues.Create(ctx, tx, asPtrs(result.TokenValues)); err != nil {
			return fmt.Errorf("create token values: %w", err)
		}
		if _, err := s.propsAPI.Create(ctx, tx, asPtrs(result.PropsAPI)); err != nil {
			return fmt.Errorf("create props api: %w", err)
		}
		invariants := convertInvariantProps(result, &rep)
		if _, err := s.tokenValues.CreateInvariants(ctx, tx, invariants); err != nil {
			return fmt.Errorf("create invariant token values: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, rep, err
	}

	s.InvalidateExport(ctx, result.DesignSystem.ID)
	return result.DesignSystem.ID, rep, nil
}

func (s *designSystemService) InvalidateExport(ctx context.Context, designSystemID uint) {
	s.exportCache.Invalidate(ctx, exportKey(designSystemID))
}

func (s *designSystemService) loadBackendData(ctx context.Context, designSystemID uint) (transformer.BackendData, error) {
	systems, err := s.designSystems.GetByIDs(ctx, nil, []uint{designSystemID})
	if err != nil {
		return transformer.BackendData{}, err
	}
	if len(systems) == 0 {
		return transformer.BackendData{}, fmt.Errorf("design system %d not found", designSystemID)
	}

	componentIDs, err := s.designSystems.GetComponentIDs(ctx, nil, designSystemID)
	if err != nil {
		return transformer.BackendData{}, err
	}

	data := transformer.BackendData{DesignSystem: *systems[0]}

	components, err := s.components.GetByIDs(ctx, nil, componentIDs)
	if err != nil {
		return transformer.BackendData{}, err
	}
	data.Components = deref(components)

	tokens, err := s.tokens.GetByComponentIDs(ctx, nil, componentIDs)
	if err != nil {
		return transformer.BackendData{}, err
	}
	data.Tokens = deref(tokens)

	variations, err := s.variations.GetByComponentIDs(ctx, nil, componentIDs)
	if err != nil {
		return transformer.BackendData{}, err
	}
	data.Variations = deref(variations)

	variationIDs := make([]uint, 0, len(variations))
	for _, v := range variations {
		variationIDs = append(variationIDs, v.ID)
	}
	tokenVariations, err := s.tokens.GetTokenVariationsByVariationIDs(ctx, nil, variationIDs)
	if err != nil {
		return transformer.BackendData{}, err
	}
	data.TokenVariations = deref(tokenVariations)

	variationValues, err := s.variations.GetValuesByComponentIDs(ctx, nil, componentIDs)
	if err != nil {
		return transformer.BackendData{}, err
	}
	data.VariationValues = deref(variationValues)

	tokenValues, err := s.tokenValues.GetByComponentIDs(ctx, nil, componentIDs)
	if err != nil {
		return transformer.BackendData{}, err
	}
	data.TokenValues = deref(tokenValues)

	invariants, err := s.tokenValues.GetInvariantsByComponentIDs(ctx, nil, componentIDs)
	if err != nil {
		return transformer.BackendData{}, err
	}
	data.InvariantTokenValues = deref(invariants)

	propsAPI, err := s.propsAPI.GetByComponentIDs(ctx, nil, componentIDs)
	if err != nil {
		return transformer.BackendData{}, err
	}
	data.PropsAPI = deref(propsAPI)

	return data, nil
}

// convertInvariantProps finishes the externally-supplied step of the reverse
// transform: invariant prop configs become rows using the call's token-id
// map, with the token type recovered from the created rows. Props referencing
// unknown tokens are dropped with a warning.
func convertInvariantProps(result transformer.BackendResult, rep *transformer.Report) []*types.InvariantTokenValue {
	tokenTypes := make(map[uint]meta.TokenType, len(result.Tokens))
	for _, tok := range result.Tokens {
		tokenTypes[tok.ID] = tok.Type
	}
	var rows []*types.InvariantTokenValue
	for componentID, props := range result.InvariantPropConfigs {
		for _, prop := range props {
			tokenID, ok := result.TokenIDs[prop.ID]
			if !ok {
				rep.Warnings = append(rep.Warnings, fmt.Sprintf("invariant prop references unmapped token %s, dropping its value", prop.ID))
				continue
			}
			rows = append(rows, &types.InvariantTokenValue{
				TokenID:        tokenID,
				Value:          transformer.StringifyValue(prop.Value),
				Type:           tokenTypes[tokenID],
				ComponentID:    componentID,
				DesignSystemID: result.DesignSystem.ID,
			})
		}
	}
	return rows
}

func exportKey(designSystemID uint) string {
	return fmt.Sprintf("design-system:%d", designSystemID)
}

func asPtrs[T any](items []T) []*T {
	out := make([]*T, 0, len(items))
	for i := range items {
		out = append(out, &items[i])
	}
	return out
}

func deref[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	return out
}

package builder

import (
	"github.com/plasmahub/plasma-builder-backend/internal/meta"
)

// Props is the ordered set of props for one scope (invariants or one style).
type Props struct {
	list []Prop
}

// NewProps builds the collection from a nullable config list and the
// component's full token API. Configs referencing an unknown token id are
// skipped; duplicate token ids keep the first occurrence.
func NewProps(cfgs []meta.PropConfig, api []meta.ComponentAPI) *Props {
	p := &Props{}
	seen := make(map[string]struct{}, len(cfgs))
	for _, cfg := range cfgs {
		if _, dup := seen[cfg.ID]; dup {
			continue
		}
		entry := findAPI(api, cfg.ID)
		if entry == nil {
			continue
		}
		seen[cfg.ID] = struct{}{}
		p.list = append(p.list, NewProp(*entry, cfg))
	}
	return p
}

// Get returns the prop for a token id, or nil.
func (p *Props) Get(tokenID string) Prop {
	if p == nil {
		return nil
	}
	for _, prop := range p.list {
		if prop.TokenID() == tokenID {
			return prop
		}
	}
	return nil
}

// Add appends a prop. Existing props with the same token id are left in
// place; the new entry simply never shadows them on lookup.
func (p *Props) Add(prop Prop) {
	if p == nil || prop == nil {
		return
	}
	p.list = append(p.list, prop)
}

// Remove drops the prop with the given token id, if present.
func (p *Props) Remove(tokenID string) {
	if p == nil {
		return
	}
	filtered := p.list[:0]
	for _, prop := range p.list {
		if prop.TokenID() != tokenID {
			filtered = append(filtered, prop)
		}
	}
	p.list = filtered
}

// All returns the props in insertion order.
func (p *Props) All() []Prop {
	if p == nil {
		return nil
	}
	return p.list
}

// Len reports the number of props.
func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.list)
}

// Configs serializes every prop back to its persisted shape.
func (p *Props) Configs() []meta.PropConfig {
	if p == nil {
		return nil
	}
	out := make([]meta.PropConfig, 0, len(p.list))
	for _, prop := range p.list {
		out = append(out, prop.Config())
	}
	return out
}

func findAPI(api []meta.ComponentAPI, tokenID string) *meta.ComponentAPI {
	for i := range api {
		if api[i].ID == tokenID {
			return &api[i]
		}
	}
	return nil
}

package transformer

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/meta"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
)

// FormatTransformer converts a design system between its backend relational
// shape and the client nested shape. It keeps no per-call state: identifier
// maps live on the stack of each transform invocation, so one instance is
// safe to share across concurrent requests.
type FormatTransformer struct {
	log *logger.Logger
	seq *Sequence

	// expandStyleProps controls whether style props become TokenValue rows
	// on the client-to-backend path. The historic pipeline left this path
	// unimplemented; it is on by default here so round-trips keep prop
	// values, and can be disabled for consumers that expect the old output.
	expandStyleProps bool
}

// Option configures a FormatTransformer.
type Option func(*FormatTransformer)

// WithSequence injects the numeric id generator used on the
// client-to-backend path. Tests inject a fixed-start sequence to get
// deterministic rows.
func WithSequence(seq *Sequence) Option {
	return func(t *FormatTransformer) { t.seq = seq }
}

// WithoutStylePropExpansion restores the legacy behavior where style props
// are parsed but never converted into TokenValue rows.
func WithoutStylePropExpansion() Option {
	return func(t *FormatTransformer) { t.expandStyleProps = false }
}

func NewFormatTransformer(baseLog *logger.Logger, opts ...Option) *FormatTransformer {
	t := &FormatTransformer{
		log:              baseLog.With("service", "FormatTransformer"),
		seq:              NewSequence(1),
		expandStyleProps: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Report collects the advisory diagnostics of one transform call. Nothing in
// it is fatal; the transform always returns a best-effort result.
type Report struct {
	Warnings []string
	DataLoss []string
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Report) lossf(format string, args ...any) {
	r.DataLoss = append(r.DataLoss, fmt.Sprintf(format, args...))
}

// Sequence is a monotonic numeric id generator. It replaces the random
// numeric ids of the historic pipeline, which could collide.
type Sequence struct {
	n atomic.Uint64
}

func NewSequence(start uint) *Sequence {
	s := &Sequence{}
	s.n.Store(uint64(start) - 1)
	return s
}

func (s *Sequence) Next() uint {
	return uint(s.n.Add(1))
}

// BackendData is a full design system in relational rows.
type BackendData struct {
	DesignSystem           types.DesignSystem
	DesignSystemComponents []types.DesignSystemComponent
	Components             []types.Component
	Variations             []types.Variation
	Tokens                 []types.Token
	TokenVariations        []types.TokenVariation
	VariationValues        []types.VariationValue
	TokenValues            []types.TokenValue
	InvariantTokenValues   []types.InvariantTokenValue
	PropsAPI               []types.PropsAPI
}

// BackendResult is the output of a client-to-backend transform. Invariant
// props are not converted to rows here: turning them into
// InvariantTokenValue rows needs token-id context only the caller has, so
// they are handed back parsed, keyed by the new numeric component id.
type BackendResult struct {
	BackendData
	InvariantPropConfigs map[uint][]meta.PropConfig
	// TokenIDs maps client token ids onto the numeric ids generated in this
	// call, so callers can finish the invariant-prop conversion.
	TokenIDs map[string]uint
}

// idKey scopes a numeric id by entity kind inside one transform call.
func idKey(id uint, kind string) string {
	return fmt.Sprintf("%d_%s", id, kind)
}

const (
	kindComponent      = "COMPONENT"
	kindToken          = "TOKEN"
	kindVariation      = "VARIATION"
	kindVariationValue = "VARIATION_VALUE"
)

func (t *FormatTransformer) newUUID() string {
	return uuid.NewString()
}

func formatTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.RFC3339Nano)
}

// parseTimeOr parses an RFC3339 timestamp, falling back to the given default
// when absent or malformed.
func parseTimeOr(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return fallback
	}
	return ts
}

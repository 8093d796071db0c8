package staticsearch

import (
	"fmt"
	"strings"

	"github.com/hupe1980/staticsearch/index"
	"github.com/hupe1980/staticsearch/index/blocked"
	"github.com/hupe1980/staticsearch/index/eytzinger"
)

// Variant selects the implicit layout backing an index.
type Variant int

const (
	// VariantBlocked is the wide-fanout layout with cache-line-sized nodes.
	// It is the default: fewer levels, one cache line per level.
	VariantBlocked Variant = iota

	// VariantEytzinger is the binary breadth-first layout.
	VariantEytzinger
)

// String returns the string representation of a Variant.
func (v Variant) String() string {
	switch v {
	case VariantBlocked:
		return "blocked"
	case VariantEytzinger:
		return "eytzinger"
	default:
		return fmt.Sprintf("Unknown(%d)", int(v))
	}
}

// ParseVariant parses a string into a Variant value.
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blocked":
		return VariantBlocked, true
	case "eytzinger":
		return VariantEytzinger, true
	default:
		return VariantBlocked, false
	}
}

// Options contains configuration options for Build.
type Options struct {
	// Variant selects the layout.
	Variant Variant

	// NodeWidth is the number of keys per node for the blocked variant.
	// The default fills one 64-byte cache line. Ignored by the eytzinger
	// variant.
	NodeWidth int

	// Prefetch enables the cache warming hint during eytzinger descent.
	// Ignored by the blocked variant, whose node scan already loads whole
	// lines.
	Prefetch bool

	// SkipVerify disables the fail-fast sorted-input check. Building from
	// unsorted input then silently returns wrong answers; only skip the
	// check when the caller guarantees order and the build is on a hot
	// path.
	SkipVerify bool

	// Logger receives build diagnostics. Defaults to a no-op logger.
	Logger *Logger
}

// DefaultOptions contains the default configuration options for Build.
var DefaultOptions = Options{
	Variant:   VariantBlocked,
	NodeWidth: blocked.DefaultNodeWidth,
	Prefetch:  true,
}

// Index is an immutable lower-bound index over a fixed sorted key set.
// Any number of goroutines may query it concurrently.
type Index struct {
	impl    index.Index
	variant Variant
}

// Build constructs an index from sorted keys. The input must be
// non-decreasing and free of the reserved maximum value; both are checked
// unless SkipVerify is set. The input slice is only read, never retained.
func Build(keys []uint32, optFns ...func(o *Options)) (*Index, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = NoopLogger()
	}

	if !opts.SkipVerify {
		if err := index.VerifySorted(keys); err != nil {
			return nil, translateError(err)
		}
	}

	var impl index.Index
	switch opts.Variant {
	case VariantEytzinger:
		impl = eytzinger.New(keys, func(o *eytzinger.Options) {
			o.Prefetch = opts.Prefetch
		})
	case VariantBlocked:
		tr, err := blocked.New(keys, func(o *blocked.Options) {
			o.NodeWidth = opts.NodeWidth
		})
		if err != nil {
			return nil, translateError(err)
		}
		impl = tr
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(opts.Variant))
	}

	logger.Debug("built layout",
		"variant", opts.Variant.String(),
		"keys", len(keys),
	)

	return &Index{impl: impl, variant: opts.Variant}, nil
}

// LowerBound returns the smallest stored key >= x.
// The second return value is false if no such key exists. Not-found is a
// normal result, never an error.
func (ix *Index) LowerBound(x uint32) (uint32, bool) {
	return ix.impl.LowerBound(x)
}

// RawIndex returns the layout-level slot of the result for x, for
// diagnostics and testing. The eytzinger layout reports 0 for not-found
// (slot 0 is always reserved); the blocked layout reports -1.
func (ix *Index) RawIndex(x uint32) int {
	return ix.impl.RawIndex(x)
}

// Len returns the number of stored keys.
func (ix *Index) Len() int {
	return ix.impl.Len()
}

// Variant returns the layout backing this index.
func (ix *Index) Variant() Variant {
	return ix.variant
}

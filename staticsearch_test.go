package staticsearch_test

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/hupe1980/staticsearch"
	"github.com/hupe1980/staticsearch/index"
	"github.com/hupe1980/staticsearch/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var variants = []staticsearch.Variant{
	staticsearch.VariantBlocked,
	staticsearch.VariantEytzinger,
}

func TestBuild(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		ix, err := staticsearch.Build([]uint32{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, staticsearch.VariantBlocked, ix.Variant())
		assert.Equal(t, 3, ix.Len())
	})

	t.Run("Unsorted input", func(t *testing.T) {
		_, err := staticsearch.Build([]uint32{3, 1, 2})
		require.Error(t, err)
		var unsorted *staticsearch.ErrUnsortedInput
		require.ErrorAs(t, err, &unsorted)
		assert.Equal(t, 1, unsorted.Position)
	})

	t.Run("Reserved key", func(t *testing.T) {
		_, err := staticsearch.Build([]uint32{1, math.MaxUint32})
		require.Error(t, err)
		var reserved *staticsearch.ErrReservedKey
		require.ErrorAs(t, err, &reserved)
		assert.Equal(t, 1, reserved.Position)
	})

	t.Run("Invalid node width", func(t *testing.T) {
		_, err := staticsearch.Build([]uint32{1, 2, 3}, func(o *staticsearch.Options) {
			o.NodeWidth = 32
		})
		require.Error(t, err)
		var width *staticsearch.ErrInvalidNodeWidth
		require.ErrorAs(t, err, &width)
		assert.Equal(t, 32, width.Width)
	})

	t.Run("Unknown variant", func(t *testing.T) {
		_, err := staticsearch.Build([]uint32{1, 2, 3}, func(o *staticsearch.Options) {
			o.Variant = staticsearch.Variant(99)
		})
		require.ErrorIs(t, err, staticsearch.ErrUnknownVariant)
	})

	t.Run("SkipVerify", func(t *testing.T) {
		// The check is skipped; behavior over unsorted input is
		// unspecified but the build itself must succeed.
		_, err := staticsearch.Build([]uint32{3, 1, 2}, func(o *staticsearch.Options) {
			o.SkipVerify = true
		})
		require.NoError(t, err)
	})
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "blocked", staticsearch.VariantBlocked.String())
	assert.Equal(t, "eytzinger", staticsearch.VariantEytzinger.String())

	v, ok := staticsearch.ParseVariant(" Eytzinger ")
	assert.True(t, ok)
	assert.Equal(t, staticsearch.VariantEytzinger, v)

	_, ok = staticsearch.ParseVariant("btree")
	assert.False(t, ok)
}

func TestLowerBoundAgainstReference(t *testing.T) {
	rng := testutil.NewRNG(23)

	for _, variant := range variants {
		t.Run(variant.String(), func(t *testing.T) {
			for _, n := range []int{0, 1, 5, 100, 3000} {
				keys := rng.SortedKeys(n, 5)
				ix, err := staticsearch.Build(keys, func(o *staticsearch.Options) {
					o.Variant = variant
				})
				require.NoError(t, err)

				queries := []uint32{0, 1, math.MaxUint32}
				if n > 0 {
					queries = append(queries, rng.QueryMix(keys, 512)...)
				}
				for _, x := range queries {
					want, wantOK := index.ReferenceLowerBound(keys, x)
					got, ok := ix.LowerBound(x)
					require.Equal(t, wantOK, ok, "variant=%s n=%d x=%d", variant, n, x)
					if ok {
						require.Equal(t, want, got, "variant=%s n=%d x=%d", variant, n, x)
					}
				}
			}
		})
	}
}

// Many goroutines querying one built, unmutated index must all observe
// results consistent with the reference. Run with -race.
func TestConcurrentQueries(t *testing.T) {
	rng := testutil.NewRNG(29)
	keys := rng.SortedUniqueKeys(5000)

	for _, variant := range variants {
		t.Run(variant.String(), func(t *testing.T) {
			ix, err := staticsearch.Build(keys, func(o *staticsearch.Options) {
				o.Variant = variant
			})
			require.NoError(t, err)

			const workers = 8
			var wg sync.WaitGroup
			errCh := make(chan error, workers)

			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func(seed int64) {
					defer wg.Done()
					r := testutil.NewRNG(seed)
					for _, x := range r.QueryMix(keys, 4096) {
						want, wantOK := index.ReferenceLowerBound(keys, x)
						got, ok := ix.LowerBound(x)
						if ok != wantOK || (ok && got != want) {
							errCh <- fmt.Errorf("x=%d: got (%d,%v), want (%d,%v)", x, got, ok, want, wantOK)
							return
						}
					}
				}(int64(w))
			}

			wg.Wait()
			close(errCh)
			for err := range errCh {
				t.Error(err)
			}
		})
	}
}

func TestLowerBoundBatch(t *testing.T) {
	rng := testutil.NewRNG(31)
	keys := rng.SortedUniqueKeys(2000)

	ix, err := staticsearch.Build(keys)
	require.NoError(t, err)

	t.Run("Matches sequential", func(t *testing.T) {
		queries := rng.QueryMix(keys, 5000)
		results, err := ix.LowerBoundBatch(context.Background(), queries)
		require.NoError(t, err)
		require.Len(t, results, len(queries))

		for i, x := range queries {
			want, wantOK := ix.LowerBound(x)
			assert.Equal(t, wantOK, results[i].Found, "i=%d", i)
			assert.Equal(t, want, results[i].Value, "i=%d", i)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		results, err := ix.LowerBoundBatch(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ix.LowerBoundBatch(ctx, rng.QueryMix(keys, 10000))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRawIndex(t *testing.T) {
	keys := []uint32{1, 3, 5, 7, 9, 11, 13, 16}

	t.Run("eytzinger", func(t *testing.T) {
		ix, err := staticsearch.Build(keys, func(o *staticsearch.Options) {
			o.Variant = staticsearch.VariantEytzinger
		})
		require.NoError(t, err)
		// Slot 0 is reserved; it signals not-found for both the
		// above-maximum query and the empty layout.
		assert.Equal(t, 0, ix.RawIndex(17))
		assert.NotZero(t, ix.RawIndex(6))

		empty, err := staticsearch.Build(nil, func(o *staticsearch.Options) {
			o.Variant = staticsearch.VariantEytzinger
		})
		require.NoError(t, err)
		assert.Equal(t, 0, empty.RawIndex(0))
	})

	t.Run("blocked", func(t *testing.T) {
		ix, err := staticsearch.Build(keys)
		require.NoError(t, err)
		assert.Equal(t, -1, ix.RawIndex(17))
		assert.GreaterOrEqual(t, ix.RawIndex(6), 0)
	})
}

package eytzinger_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/staticsearch/index"
	"github.com/hupe1980/staticsearch/index/eytzinger"
	"github.com/hupe1980/staticsearch/testutil"
)

func BenchmarkLowerBound(b *testing.B) {
	sizes := []int{1 << 10, 1 << 16, 1 << 20}

	for _, n := range sizes {
		rng := testutil.NewRNG(0)
		keys := rng.SortedUniqueKeys(n)
		queries := rng.QueryMix(keys, 4096)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			tr := eytzinger.New(keys)
			b.ReportAllocs()
			b.ResetTimer()

			var sink uint32
			for i := 0; i < b.N; i++ {
				v, _ := tr.LowerBound(queries[i&4095])
				sink += v
			}
			_ = sink
		})

		b.Run(fmt.Sprintf("n=%d/reference", n), func(b *testing.B) {
			b.ReportAllocs()

			var sink uint32
			for i := 0; i < b.N; i++ {
				v, _ := index.ReferenceLowerBound(keys, queries[i&4095])
				sink += v
			}
			_ = sink
		})
	}
}

func BenchmarkBuild(b *testing.B) {
	rng := testutil.NewRNG(0)
	keys := rng.SortedUniqueKeys(1 << 16)

	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		_ = eytzinger.New(keys)
	}
}

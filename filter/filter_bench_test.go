package filter_test

import (
	"fmt"
	"testing"

	"github.com/rag-nar1/abloom/filter"
)

// BenchmarkHashers measures the cost of turning a value into a filter hash
func BenchmarkHashers(b *testing.B) {
	hashers := map[string]filter.Hasher{
		"content": filter.ContentHasher{},
		"metro":   filter.FastHasher{Engine: filter.EngineMetro},
		"xxh3":    filter.FastHasher{Engine: filter.EngineXXH3},
		"city":    filter.FastHasher{Engine: filter.EngineCity},
		"murmur3": filter.FastHasher{Engine: filter.EngineMurmur3},
	}

	for _, size := range []int{8, 64, 1024} {
		v := filter.Bytes(make([]byte, size))
		for name, h := range hashers {
			b.Run(fmt.Sprintf("%s/%d", name, size), func(b *testing.B) {
				b.SetBytes(int64(size))
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, _ = h.Hash(v)
				}
			})
		}
	}
}

// BenchmarkValueOf measures resolving plain Go values
func BenchmarkValueOf(b *testing.B) {
	items := []any{"text", []byte("bytes"), 42, 4.2}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = filter.ValueOf(items[i%len(items)])
	}
}

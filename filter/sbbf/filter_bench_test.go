package sbbf_test

import (
	"fmt"
	"testing"

	"github.com/rag-nar1/abloom/filter"
	"github.com/rag-nar1/abloom/filter/sbbf"
)

// BenchmarkPerformance measures Insert and Contains for both hashing modes.
func BenchmarkPerformance(b *testing.B) {
	n := uint64(100000)
	fpRate := 0.01
	testData := filter.Bytes([]byte("performance test data"))

	for _, serializable := range []bool{false, true} {
		f, err := sbbf.NewWithMode(n, fpRate, serializable)
		if err != nil {
			b.Fatal(err)
		}
		_ = f.Insert(testData)

		b.Run(fmt.Sprintf("Insert/serializable=%t", serializable), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = f.Insert(testData)
			}
		})

		b.Run(fmt.Sprintf("Contains/serializable=%t", serializable), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = f.Contains(testData)
			}
		})
	}
}

// BenchmarkEngines compares the fast-mode byte hashes.
func BenchmarkEngines(b *testing.B) {
	data := filter.Bytes([]byte("engine benchmark payload of moderate length"))
	for _, e := range []filter.Engine{filter.EngineMetro, filter.EngineXXH3, filter.EngineCity, filter.EngineMurmur3} {
		f, err := sbbf.New(100000, 0.01, sbbf.WithEngine(e))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(e.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = f.Insert(data)
			}
		})
	}
}

// BenchmarkAccuracy reports the measured false positive rate next to the target.
func BenchmarkAccuracy(b *testing.B) {
	n := 50000
	fpRate := 0.01
	f, err := sbbf.NewSerializable(uint64(n), fpRate)
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < n; i++ {
		_ = f.Insert(filter.Text(fmt.Sprintf("known_item_%d", i)))
	}

	testItems := make([]filter.Value, 10000)
	for i := range testItems {
		testItems[i] = filter.Text(fmt.Sprintf("unknown_item_%d", i))
	}

	falsePositives := 0
	for _, item := range testItems {
		if ok, _ := f.Contains(item); ok {
			falsePositives++
		}
	}
	falsePositiveRate := float64(falsePositives) / float64(len(testItems))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = f.Contains(testItems[i%len(testItems)])
	}

	b.ReportMetric(falsePositiveRate*100, "actual_fpr_%")
	b.ReportMetric(fpRate*100, "theoretical_fpr_%")
	b.ReportMetric(float64(f.BitCount())/float64(n), "bits_per_item")
}

func BenchmarkSerialize(b *testing.B) {
	f, err := sbbf.NewSerializable(1_000_000, 0.01)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("Serialize", func(b *testing.B) {
		b.SetBytes(int64(sbbf.HeaderSize + f.ByteCount()))
		for i := 0; i < b.N; i++ {
			_ = f.Serialize()
		}
	})
	data := f.Serialize()
	b.Run("Deserialize", func(b *testing.B) {
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			if _, err := sbbf.Deserialize(data); err != nil {
				b.Fatal(err)
			}
		}
	})
}

package cmd

import (
	"fmt"
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/rag-nar1/abloom/filter"
)

type benchOptions struct {
	filterOptions
	seed int64
}

var benchOpts benchOptions

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark a filter.",
	Long: `Inserts --capacity random keys, then queries as many keys that were never
inserted. Reports insert and query latency percentiles and the observed false
positive rate.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := newFilter(&benchOpts.filterOptions)
		if err != nil {
			return err
		}
		glog.Infof("benchmarking %s filter: capacity=%d fp_rate=%v serializable=%t bytes=%d",
			benchOpts.kind, f.Capacity(), f.FPRate(), f.Serializable(), f.ByteCount())

		fmt.Println("Generating keys.")
		present := make(map[string]struct{}, capacity)
		keyGen := newKeyGenerator(benchOpts.seed)
		inserted := make([][]byte, 0, capacity)
		for uint64(len(inserted)) < capacity {
			k := keyGen.next()
			if _, ok := present[string(k)]; ok {
				continue
			}
			present[string(k)] = struct{}{}
			inserted = append(inserted, k)
		}
		absent := make([][]byte, 0, capacity)
		for uint64(len(absent)) < capacity {
			k := keyGen.next()
			if _, ok := present[string(k)]; ok {
				continue
			}
			absent = append(absent, k)
		}
		fmt.Println("Done generating keys.")

		insertHist := hdrhistogram.New(0, int64(time.Second), 3)
		for _, k := range inserted {
			start := time.Now()
			err := f.Insert(filter.Bytes(k))
			elapsed := time.Since(start)
			if err != nil {
				return err
			}
			if err := insertHist.RecordValue(elapsed.Nanoseconds()); err != nil {
				glog.Warningf("dropping insert sample: %v", err)
			}
		}

		queryHist := hdrhistogram.New(0, int64(time.Second), 3)
		var falseNegatives, falsePositives int
		query := func(keys [][]byte, want bool) error {
			for _, k := range keys {
				start := time.Now()
				ok, err := f.Contains(filter.Bytes(k))
				elapsed := time.Since(start)
				if err != nil {
					return err
				}
				switch {
				case want && !ok:
					falseNegatives++
				case !want && ok:
					falsePositives++
				}
				if err := queryHist.RecordValue(elapsed.Nanoseconds()); err != nil {
					glog.Warningf("dropping query sample: %v", err)
				}
			}
			return nil
		}
		if err := query(inserted, true); err != nil {
			return err
		}
		if err := query(absent, false); err != nil {
			return err
		}
		if falseNegatives > 0 {
			glog.Errorf("%d false negatives", falseNegatives)
		}

		fmt.Printf("Run complete. Inserts: %d, Queries: %d\n", insertHist.TotalCount(), queryHist.TotalCount())
		printLatency("insert", insertHist)
		printLatency("query", queryHist)
		fmt.Printf("false positives: %d/%d (%.4f%%, target %.4f%%)\n",
			falsePositives, len(absent), 100*float64(falsePositives)/float64(len(absent)), 100*fpRate)
		return nil
	},
}

func printLatency(name string, h *hdrhistogram.Histogram) {
	fmt.Printf("%s p50: %vns, p95: %vns, p99: %vns, max: %vns\n",
		name, h.ValueAtQuantile(50), h.ValueAtQuantile(95), h.ValueAtQuantile(99), h.Max())
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchOpts.register(benchCmd.Flags())
	benchCmd.Flags().Int64Var(&benchOpts.seed, "seed", 1, "Key generator seed.")
}

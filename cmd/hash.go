package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rag-nar1/abloom/filter"
	"github.com/rag-nar1/abloom/filter/sbbf"
)

var (
	hashOpts  filterOptions
	valueType string
)

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash <value>...",
	Short: "Prints where values land in a filter.",
	Long: `Prints the 64-bit hash, block index and the eight bit positions of each value
in a split block filter sized by --capacity and --fp_rate.

Without --serializable the hash is keyed by a per-process seed and changes
between runs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blocks, err := sbbf.Calibrate(capacity, fpRate)
		if err != nil {
			return err
		}
		var h filter.Hasher = filter.FastHasher{Engine: hashOpts.engine.e}
		if hashOpts.serializable {
			h = filter.ContentHasher{}
		}

		for _, arg := range args {
			v, err := parseValue(valueType, arg)
			if err != nil {
				return err
			}
			hash, err := h.Hash(v)
			if err != nil {
				return fmt.Errorf("%s: %w", v, err)
			}
			block, bits := sbbf.Locate(hash, blocks)
			fmt.Printf("%s\thash=0x%016x\tblock=%d/%d\tbits=%v\n", v, hash, block, blocks, bits)
		}
		return nil
	},
}

func parseValue(typ, s string) (filter.Value, error) {
	switch typ {
	case "text":
		return filter.Text(s), nil
	case "hex":
		b, err := hex.DecodeString(s)
		if err != nil {
			return filter.Value{}, fmt.Errorf("%w: %v", filter.ErrType, err)
		}
		return filter.Bytes(b), nil
	case "int":
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return filter.Value{}, fmt.Errorf("%w: %v", filter.ErrType, err)
		}
		return filter.Int64(i), nil
	case "float":
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return filter.Value{}, fmt.Errorf("%w: %v", filter.ErrType, err)
		}
		return filter.Float64(f), nil
	}
	return filter.Value{}, fmt.Errorf("%w: unknown value type %q", filter.ErrConfiguration, typ)
}

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().BoolVar(&hashOpts.serializable, "serializable", false, "Use the cross-process content hash.")
	hashCmd.Flags().Var(&hashOpts.engine, "engine", "Fast-mode byte hash: metro, xxh3, city or murmur3.")
	hashCmd.Flags().StringVar(&valueType, "type", "text", "How arguments are read: text, hex, int or float.")
}

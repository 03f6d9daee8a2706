package cmd

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/rag-nar1/abloom/filter"
	"github.com/rag-nar1/abloom/filter/sbbf"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file> [value]...",
	Short: "Prints a serialized filter.",
	Long: `Decodes a serialized filter and prints its header and fill statistics.
Any further arguments are looked up as text values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		f, err := sbbf.Deserialize(data)
		if err != nil {
			return fmt.Errorf("%v: %w", args[0], err)
		}
		glog.V(2).Infof("decoded %d bytes from %v", len(data), args[0])

		set := f.PopCount()
		fmt.Printf("%v\n", f)
		fmt.Printf("version:      %d\n", data[4])
		fmt.Printf("blocks:       %d\n", f.BlockCount())
		fmt.Printf("bytes:        %d\n", f.ByteCount())
		fmt.Printf("bits set:     %d/%d (%.2f%%)\n", set, f.BitCount(), 100*float64(set)/float64(f.BitCount()))
		if calibrated, err := sbbf.Calibrate(f.Capacity(), f.FPRate()); err == nil && calibrated != f.BlockCount() {
			fmt.Printf("note: this build would size the filter with %d blocks\n", calibrated)
		}

		for _, arg := range args[1:] {
			ok, err := f.Contains(filter.Text(arg))
			if err != nil {
				return fmt.Errorf("%q: %w", arg, err)
			}
			fmt.Printf("%q\t%t\n", arg, ok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

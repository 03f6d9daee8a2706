package cmd

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/rag-nar1/abloom/filter/sbbf"
)

// calibrateCmd represents the calibrate command
var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Prints the sizing of a filter.",
	Long:  `Prints the bits per element, block count and size chosen for --capacity and --fp_rate.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		blocks, err := sbbf.Calibrate(capacity, fpRate)
		if err != nil {
			return err
		}
		bpe := sbbf.BitsPerElement(fpRate)
		glog.V(2).Infof("calibrated capacity=%d fp_rate=%v to %v bits per element", capacity, fpRate, bpe)

		actual := float64(blocks*sbbf.BlockBits) / float64(capacity)
		fmt.Printf("capacity:          %d\n", capacity)
		fmt.Printf("fp_rate:           %v\n", fpRate)
		fmt.Printf("bits per element:  %.4f (model)\n", bpe)
		fmt.Printf("                   %.4f (allocated)\n", actual)
		fmt.Printf("blocks:            %d\n", blocks)
		fmt.Printf("bytes:             %d\n", blocks*sbbf.BlockBytes)
		fmt.Printf("model fp_rate:     %.6g\n", sbbf.FalsePositiveRate(actual))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calibrateCmd)
}

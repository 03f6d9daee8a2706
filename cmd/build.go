package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/rag-nar1/abloom/filter"
	"github.com/rag-nar1/abloom/filter/sbbf"
)

var buildOut string

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [input]",
	Short: "Builds a serialized filter from lines of text.",
	Long: `Inserts every line of input (or stdin) as a text value into a serializable
filter sized by --capacity and --fp_rate, then writes it to --out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = os.Stdin
		if len(args) == 1 {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()
			in = file
		}

		f, err := sbbf.NewSerializable(capacity, fpRate)
		if err != nil {
			return err
		}

		n := 0
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if err := f.Insert(filter.Text(scanner.Text())); err != nil {
				return fmt.Errorf("line %d: %w", n+1, err)
			}
			n++
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		if uint64(n) > capacity {
			glog.Warningf("inserted %d values into a filter sized for %d", n, capacity)
		}

		if err := os.WriteFile(buildOut, f.Serialize(), 0o644); err != nil {
			return err
		}
		glog.Infof("wrote %d values to %v (%d bytes)", n, buildOut, sbbf.HeaderSize+f.ByteCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&buildOut, "out", "filter.ablm", "Output file.")
}

package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var (
	capacity uint64
	fpRate   float64
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "abloom",
	Short: "A tool for building and inspecting split block Bloom filters",
	Long: `abloom sizes, benchmarks and inspects split block Bloom filters.

Filters are sized from --capacity and --fp_rate. Files written by "abloom build"
use the serializable wire format and can be read back with "abloom inspect".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// glog flags were set through pflag; mark the Go flag set parsed.
		return flag.CommandLine.Parse(nil)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		glog.Flush()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		glog.Flush()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentFlags().Uint64Var(&capacity, "capacity", 100000, "Expected number of distinct elements.")
	rootCmd.PersistentFlags().Float64Var(&fpRate, "fp_rate", 0.01, "Target false positive rate, in (0, 1).")
}

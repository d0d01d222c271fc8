// Command bitbench exercises the bitstream package's write, read and
// measure modes against a sample payload from the command line. It is a
// collaborator, not part of the core library's interface.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	seed    int64
	verbose bool
	log     = logrus.New()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bitbench",
		Short: "Exercise the bitstream package against a sample payload",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "random seed for the sample payload's values")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(roundtripCmd(), measureCmd(), corruptCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

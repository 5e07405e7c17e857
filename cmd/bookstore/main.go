package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bookstore",
	Short: "MongoDB query walkthrough over a sample book catalog",
	Long: "Connects to MongoDB, seeds the plp_bookstore.books collection when it is empty, " +
		"and runs a fixed sequence of reads, updates, deletes, aggregations, and index operations.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWalkthrough,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalFlags.uri, "uri", "", "MongoDB connection URI (default $MONGODB_URI)")
	flags.StringVar(&globalFlags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&globalFlags.output, "output", "", "result format: yaml or json")
	flags.DurationVar(&globalFlags.timeout, "timeout", 0, "overall time limit, 0 for none")
	flags.StringSliceVar(&globalFlags.envFiles, "env-file", nil, "dotenv files to load (default .env)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError is the single place a failed command's error is shown.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, "Error occurred:", err)
}

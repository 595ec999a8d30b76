package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kmeans",
		Short: "Cluster points with K-Means",
		Long: `kmeans - Lloyd's algorithm on CSV or synthetic data.

Loads a dataset (or generates one), runs K-Means and reports the result as a
table, an optional per-iteration trace and an optional JSON file that a
plotting tool can consume.

Every flag can also be set through the environment (KMEANS_ prefix, dashes
become underscores) or a config file passed with --config.

Examples:
  kmeans run --generate blobs --centers 4 --k 4          # synthetic blobs
  kmeans run --input points.csv --k 3 --seed 7 --trace  # reproducible run with trace
  KMEANS_K=5 kmeans run --generate uniform --output out.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().CountP("verbose", "v", "Enable debug logging on stderr")
	root.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")
	root.PersistentFlags().String("config", "", "Config file (yaml, toml or json)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sampleapi/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sampleapi",
	Short: "Sample JSON API serving static users, products and orders",
	Long: `sampleapi is a small read-only HTTP API. It serves a greeting, a health
check and fixed lists of users, products and orders as JSON.

Running it without a subcommand is the same as "sampleapi serve".`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	addPortFlag(rootCmd)
}

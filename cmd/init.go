package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sampleapi/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sampleapi config file with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the port, logging and CORS settings and writes them to the --config path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

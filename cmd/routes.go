package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sampleapi/internal/routes"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the routes the server exposes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "METHOD\tPATH\tDESCRIPTION")
		for _, rt := range routes.Table() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", rt.Method, rt.Path, rt.Summary)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

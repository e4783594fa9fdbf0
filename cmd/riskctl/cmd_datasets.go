package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/JonMunkholm/riskreport/internal/core"
	"github.com/spf13/cobra"
)

func newDatasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List registered datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tFILE\tEXPORT\tTITLE")
			for _, def := range core.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					def.Info.Key, def.Info.File, core.ExportFilename(def.Info.ExportName), def.Info.Title)
			}
			return tw.Flush()
		},
	}
}

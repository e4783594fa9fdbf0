package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/JonMunkholm/riskreport/internal/core"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var flags viewFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Print the filtered and sorted rows of a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := lookup(args[0])
			if err != nil {
				return err
			}
			state, err := flags.state(def)
			if err != nil {
				return err
			}

			svc, closeFn, err := opts.open(cmd.Context(), opts.dataDir)
			if err != nil {
				return err
			}
			defer closeFn()

			view, err := svc.Query(cmd.Context(), def.Info.Key, state)
			if err != nil {
				return err
			}

			rows := view.Rows
			if limit > 0 && len(rows) > limit {
				rows = rows[:limit]
			}

			out := cmd.OutOrStdout()
			if len(rows) > 0 {
				if err := writeTable(out, core.ExportColumns(view.Filtered), rows); err != nil {
					return err
				}
			}

			fmt.Fprintf(out, "%d of %d students\n", len(rows), view.Total)
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "print at most this many rows (0 for all)")
	return cmd
}

// writeTable prints rows under a header of cols, tab aligned.
func writeTable(w io.Writer, cols []string, rows []core.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
	for _, r := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = r.Value(c)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/riskreport/internal/core"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var flags viewFlags
	var outDir string

	cmd := &cobra.Command{
		Use:   "export <key>",
		Short: "Write the filtered rows of a dataset to an xlsx workbook",
		Long: `Write the filtered rows of a dataset to an xlsx workbook named after the
dataset (for example estudiantes_semestres_perdidos.xlsx). Rows keep dataset
order.`,
		Args: cobra.ExactArgs(1),
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

			path := filepath.Join(outDir, core.ExportFilename(def.Info.ExportName))
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}

			res, err := svc.Export(cmd.Context(), f, def.Info.Key, state)
			if cerr := f.Close(); err == nil && cerr != nil {
				err = fmt.Errorf("close %s: %w", path, cerr)
			}
			if err != nil {
				os.Remove(path)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", res.Rows, path)
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write the workbook to")
	return cmd
}

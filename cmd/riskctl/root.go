package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/JonMunkholm/riskreport/internal/config"
	"github.com/JonMunkholm/riskreport/internal/core"
	"github.com/JonMunkholm/riskreport/internal/logging"
	"github.com/JonMunkholm/riskreport/internal/source"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// serviceOpener builds the service a command runs against. The returned
// function releases its resources.
type serviceOpener func(ctx context.Context, dataDir string) (*core.Service, func(), error)

// logOutput receives the CLI's log lines.
var logOutput io.Writer = os.Stderr

// rootOptions holds flags shared by every command.
type rootOptions struct {
	dataDir string
	open    serviceOpener
}

func newRootCmd(open serviceOpener) *cobra.Command {
	opts := &rootOptions{open: open}

	cmd := &cobra.Command{
		Use:   "riskctl",
		Short: "Inspect and export student risk datasets",
		Long: `riskctl reads the student risk datasets with the same configuration
as the report server (environment variables and an optional .env file).

Commands:
  datasets      - List registered datasets
  show <key>    - Print the filtered and sorted rows of a dataset
  export <key>  - Write the filtered rows of a dataset to an xlsx workbook`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "read CSV files from this directory instead of the configured source")

	cmd.AddCommand(
		newDatasetsCmd(),
		newShowCmd(opts),
		newExportCmd(opts),
	)
	return cmd
}

// openService loads configuration and opens the configured source.
// A non-empty dataDir forces the file source.
func openService(ctx context.Context, dataDir string) (*core.Service, func(), error) {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logging.New(logOutput, cfg.Logging.Level, cfg.Logging.Format))
	if envErr != nil {
		slog.Debug("no .env file found, using environment variables", "error", envErr)
	}

	if dataDir != "" {
		cfg.Data.Source = config.SourceFile
		cfg.Data.Dir = dataDir
	}

	src, closeFn, err := source.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return core.NewService(src, nil), closeFn, nil
}

// viewFlags are the filter and sort flags of show and export.
type viewFlags struct {
	query   string
	filters []string
	sortKey string
	desc    bool
}

func (f *viewFlags) register(cmd *cobra.Command, withSort bool) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "match student code (case-sensitive) or login (case-insensitive)")
	cmd.Flags().StringArrayVarP(&f.filters, "filter", "f", nil, "FIELD=VALUE category filter, repeatable")
	if withSort {
		cmd.Flags().StringVar(&f.sortKey, "sort", "", "sort by this field")
		cmd.Flags().BoolVar(&f.desc, "desc", false, "sort descending")
	}
}

// state builds the view state for def, rejecting fields the dataset does
// not offer.
func (f *viewFlags) state(def core.DatasetDefinition) (core.ViewState, error) {
	state := core.ViewState{}.WithQuery(f.query)

	for _, raw := range f.filters {
		field, value, ok := strings.Cut(raw, "=")
		if !ok || field == "" {
			return core.ViewState{}, fmt.Errorf("invalid filter %q: want FIELD=VALUE", raw)
		}
		if !def.IsCategory(field) {
			return core.ViewState{}, fmt.Errorf("dataset %s cannot be filtered by %s", def.Info.Key, field)
		}
		if !state.Selected(field, value) {
			state = state.ToggleValue(field, value)
		}
	}

	if f.sortKey != "" {
		if !slices.Contains(def.SortableFields(), f.sortKey) {
			return core.ViewState{}, fmt.Errorf("dataset %s cannot be sorted by %s", def.Info.Key, f.sortKey)
		}
		state = state.ToggleSort(f.sortKey)
		if f.desc {
			state = state.ToggleSort(f.sortKey)
		}
	}
	return state, nil
}

// lookup resolves a dataset key argument.
func lookup(key string) (core.DatasetDefinition, error) {
	def, ok := core.Get(key)
	if !ok {
		return core.DatasetDefinition{}, fmt.Errorf("%w: %s", core.ErrUnknownDataset, key)
	}
	return def, nil
}

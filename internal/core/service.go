package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/JonMunkholm/riskreport/internal/logging"
	"github.com/JonMunkholm/riskreport/internal/metrics"
	"github.com/google/uuid"
)

// Service provides the report operations used by the web server and CLI.
// Every call builds its own snapshot; nothing is cached between calls.
type Service struct {
	source  Source
	metrics *metrics.Metrics
}

// NewService creates a new Service reading from src. m may be nil.
func NewService(src Source, m *metrics.Metrics) *Service {
	return &Service{
		source:  src,
		metrics: m,
	}
}

// ListDatasets returns information about all registered datasets.
func (s *Service) ListDatasets() []DatasetInfo {
	defs := All()
	infos := make([]DatasetInfo, len(defs))
	for i, def := range defs {
		infos[i] = def.Info
	}
	return infos
}

// Snapshot loads every registered dataset.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	snap, err := LoadSnapshot(ctx, s.source, All())
	s.metrics.SnapshotLoaded(time.Since(start), err)
	if err != nil {
		return nil, err
	}

	for _, d := range snap.Datasets() {
		s.metrics.SourceRead(d.Def.Info.Key, d.SourceBytes, d.Len())
	}

	logging.FromContext(ctx).Debug("snapshot loaded",
		"snapshot_id", snap.ID,
		"datasets", len(snap.order),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return snap, nil
}

// Payload loads a snapshot and returns the combined retrieval payload.
func (s *Service) Payload(ctx context.Context) (map[string][]Record, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Payload(), nil
}

// Query loads a snapshot and applies state to the dataset under key.
func (s *Service) Query(ctx context.Context, key string, state ViewState) (View, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return View{}, err
	}
	d, ok := snap.Dataset(key)
	if !ok {
		return View{}, fmt.Errorf("%w: %s", ErrUnknownDataset, key)
	}
	return state.Apply(d), nil
}

// ExportResult describes a finished export.
type ExportResult struct {
	ID       uuid.UUID
	Dataset  string
	Filename string
	Rows     int
}

// Export writes the filtered records of dataset key as a workbook to w.
// Rows follow dataset order, not the display sort of state.
func (s *Service) Export(ctx context.Context, w io.Writer, key string, state ViewState) (ExportResult, error) {
	view, err := s.Query(ctx, key, state)
	if err != nil {
		return ExportResult{}, err
	}
	def, _ := Get(key)

	res := ExportResult{
		ID:       uuid.New(),
		Dataset:  key,
		Filename: ExportFilename(def.Info.ExportName),
		Rows:     len(view.Filtered),
	}

	err = Export(w, view.Filtered)
	s.metrics.Exported(key, res.Rows, err)
	if err != nil {
		return ExportResult{}, fmt.Errorf("export %s: %w", key, err)
	}

	logging.WithFields(ctx, "export_id", res.ID, "dataset", key).Info("export written",
		"rows", res.Rows,
		"file", res.Filename,
	)
	return res, nil
}

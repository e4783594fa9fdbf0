package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// LoadSnapshot reads and parses every dataset in defs concurrently.
//
// The snapshot is all or nothing: if any source fails, the first error is
// returned and no partially loaded snapshot is produced.
func LoadSnapshot(ctx context.Context, src Source, defs []DatasetDefinition) (*Snapshot, error) {
	parsed := make([][]Record, len(defs))
	sizes := make([]int64, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	for i, def := range defs {
		g.Go(func() error {
			raw, err := src.ReadDataset(gctx, def.Info.File)
			if err != nil {
				return fmt.Errorf("read dataset %s: %w", def.Info.Key, err)
			}
			parsed[i] = Parse(raw)
			sizes[i] = int64(len(raw))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	snap := &Snapshot{
		ID:       uuid.New(),
		LoadedAt: time.Now(),
		datasets: make(map[string]Dataset, len(defs)),
		order:    make([]string, 0, len(defs)),
	}
	for i, def := range defs {
		d := NewDataset(def, parsed[i])
		d.SourceBytes = sizes[i]
		snap.datasets[def.Info.Key] = d
		snap.order = append(snap.order, def.Info.Key)
	}
	return snap, nil
}

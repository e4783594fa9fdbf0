package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Source supplies the raw delimited text of a dataset by file name.
// Implementations live in internal/source.
type Source interface {
	ReadDataset(ctx context.Context, name string) (string, error)
}

// DatasetInfo contains display information about a dataset.
type DatasetInfo struct {
	Key         string // Unique identifier: "blocking_attempts"
	Label       string // Tab title
	Title       string // Card title
	Description string // Card subtitle
	File        string // Raw source name: "estudiantes_con_materia_bloqueante.csv"
	ExportName  string // Spreadsheet download name
	PayloadKey  string // Property name in the combined JSON payload
	Order       int    // Position in tabs and payloads
}

// ColumnKind tells the presentation layer how to render a field.
type ColumnKind int

const (
	ColumnText ColumnKind = iota
	ColumnCode
	ColumnProfile
	ColumnSubjects
	ColumnCount
	ColumnPeriod
)

// Column describes one displayed column of a dataset.
type Column struct {
	Field    string // Record field backing the column ("" for composite columns)
	Label    string // Header text
	Kind     ColumnKind
	Sortable bool
}

// DatasetDefinition contains everything needed to load and present a dataset.
type DatasetDefinition struct {
	Info DatasetInfo

	// CodeField is matched case-sensitively by the free-text query.
	CodeField string
	// LoginField is matched case-insensitively by the free-text query and
	// feeds the external profile link.
	LoginField string

	// Categories lists the fields offered as multi-value filters.
	Categories []Category

	Columns []Column
}

// Category is a field offered as a categorical filter.
type Category struct {
	Field string
	Label string
}

// SortableFields returns the fields of all sortable columns.
func (d DatasetDefinition) SortableFields() []string {
	var out []string
	for _, c := range d.Columns {
		if c.Sortable && c.Field != "" {
			out = append(out, c.Field)
		}
	}
	return out
}

// SearchFields returns the fields the free-text query looks at.
func (d DatasetDefinition) SearchFields() SearchFields {
	return SearchFields{Code: d.CodeField, Login: d.LoginField}
}

// IsCategory reports whether field is one of the dataset's categorical filters.
func (d DatasetDefinition) IsCategory(field string) bool {
	for _, c := range d.Categories {
		if c.Field == field {
			return true
		}
	}
	return false
}

// Dataset is the immutable sequence of records produced by one ingestion
// pass over one raw source.
type Dataset struct {
	Def DatasetDefinition
	// SourceBytes is the size of the raw text the records were parsed from.
	SourceBytes int64
	records     []Record
}

// NewDataset wraps records in a dataset snapshot. The slice is copied.
func NewDataset(def DatasetDefinition, records []Record) Dataset {
	return Dataset{Def: def, records: cloneRecords(records)}
}

// Records returns the records in input order. The returned slice is a copy.
func (d Dataset) Records() []Record {
	return cloneRecords(d.records)
}

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d.records)
}

// Snapshot holds every dataset for the lifetime of one view.
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time
	datasets map[string]Dataset
	order    []string
}

// Dataset returns the dataset registered under key.
func (s *Snapshot) Dataset(key string) (Dataset, bool) {
	d, ok := s.datasets[key]
	return d, ok
}

// Datasets returns all datasets in registry order.
func (s *Snapshot) Datasets() []Dataset {
	out := make([]Dataset, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.datasets[k])
	}
	return out
}

// Payload returns the combined retrieval payload keyed by each dataset's
// PayloadKey (for example multipleAttemptsData and failedSemestersData).
func (s *Snapshot) Payload() map[string][]Record {
	out := make(map[string][]Record, len(s.datasets))
	for _, d := range s.datasets {
		out[d.Def.Info.PayloadKey] = d.Records()
	}
	return out
}

func cloneRecords(in []Record) []Record {
	out := make([]Record, len(in))
	copy(out, in)
	return out
}

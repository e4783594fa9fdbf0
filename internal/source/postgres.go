package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JonMunkholm/riskreport/internal/core"
	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgx used by Postgres.
// Satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultTable holds one raw CSV blob per dataset file name.
//
//	CREATE TABLE risk_dataset_sources (
//	    name       text PRIMARY KEY,
//	    content    text NOT NULL,
//	    updated_at timestamptz NOT NULL DEFAULT now()
//	);
const DefaultTable = "risk_dataset_sources"

// Postgres reads raw dataset text from a table keyed by file name.
type Postgres struct {
	db    Querier
	table string
}

// NewPostgres returns a source reading from table through db.
// An empty table name selects DefaultTable; "schema.table" is accepted.
func NewPostgres(db Querier, table string) *Postgres {
	if table == "" {
		table = DefaultTable
	}
	return &Postgres{db: db, table: table}
}

// ReadDataset returns the content stored under name.
func (p *Postgres) ReadDataset(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("SELECT content FROM %s WHERE name = $1", pgx.Identifier(strings.Split(p.table, ".")).Sanitize())

	var content string
	if err := p.db.QueryRow(ctx, query, name).Scan(&content); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", core.ErrSourceNotFound, name)
		}
		return "", fmt.Errorf("query %s: %w", name, err)
	}

	text, _, err := core.ReadText(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return text, nil
}

package quadstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jward/tetra/internal/dialect"
)

// SourceState classifies a data source with respect to the quadruples table.
type SourceState int

const (
	// StateUnprobed means the catalog has not been inspected yet.
	StateUnprobed SourceState = iota
	// StateReady means the quadruples table exists.
	StateReady
	// StateTableMissing means the source is reachable but the table is absent.
	StateTableMissing
	// StateInvalid means the source could not be classified at all.
	StateInvalid
)

func (s SourceState) String() string {
	switch s {
	case StateUnprobed:
		return "unprobed"
	case StateReady:
		return "ready"
	case StateTableMissing:
		return "table missing"
	case StateInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// probe asks the engine's catalog whether the quadruples table exists. Any
// error talking to the catalog classifies the source as invalid; absence of
// the table is not an error.
func (b *Backend) probe(ctx context.Context) (SourceState, error) {
	var n int64
	err := b.db.QueryRowContext(ctx, b.dialect.ProbeTableSQL(), dialect.TableName).Scan(&n)
	if err != nil {
		return StateInvalid, fmt.Errorf("probe catalog: %w", err)
	}
	if n == 0 {
		return StateTableMissing, nil
	}
	return StateReady, nil
}

// createSchema issues the table DDL and the seven covering indexes. A failed
// statement aborts immediately; the caller treats a partial schema as fatal.
func (b *Backend) createSchema(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, b.dialect.CreateTableSQL()); err != nil {
		return fmt.Errorf("create table %s: %w", dialect.TableName, err)
	}
	indexes := b.dialect.CreateIndexSQL()
	for _, stmt := range indexes {
		if _, err := b.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	b.log.Debug("created schema",
		zap.String("table", dialect.TableName),
		zap.Int("indexes", len(indexes)))
	return nil
}

// ensureSchema walks the source from unprobed to ready, creating the table
// and indexes when missing. It returns the state the source settled in; any
// state other than ready carries an error.
func (b *Backend) ensureSchema(ctx context.Context) (SourceState, error) {
	state, err := b.probe(ctx)
	if err != nil {
		return state, err
	}
	if state == StateTableMissing {
		if err := b.createSchema(ctx); err != nil {
			return StateInvalid, err
		}
		state = StateReady
	}
	return state, nil
}

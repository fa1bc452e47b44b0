package tetra

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/jward/tetra/internal/quadstore"
	"github.com/jward/tetra/rdf"
)

// Store is a quadruple store over one relational data source. Construct with
// [Open]; the zero value is not usable. A Store is safe for concurrent use:
// statement text is compiled once at open and every call executes through
// the connection pool.
type Store struct {
	backend *quadstore.Backend
}

// Option adjusts how [Open] builds the store.
type Option func(*config)

type config struct {
	selectTimeout time.Duration
	insertTimeout time.Duration
	deleteTimeout time.Duration
	driverName    string
	logger        *zap.Logger
}

// WithSelectTimeout bounds every read statement (select, contains, count).
func WithSelectTimeout(d time.Duration) Option {
	return func(c *config) { c.selectTimeout = d }
}

// WithInsertTimeout bounds every insert transaction, including graph merges.
func WithInsertTimeout(d time.Duration) Option {
	return func(c *config) { c.insertTimeout = d }
}

// WithDeleteTimeout bounds every delete transaction.
func WithDeleteTimeout(d time.Duration) Option {
	return func(c *config) { c.deleteTimeout = d }
}

// WithDriverName overrides the database/sql driver registration the engine's
// dialect selects by default, e.g. WithDriverName("sqlite") runs the sqlite
// engine on the pure-Go driver instead of the cgo one.
func WithDriverName(name string) Option {
	return func(c *config) { c.driverName = name }
}

// WithLogger attaches a logger for debug-level operational events. The
// default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Open connects to the engine's data source named by dsn and returns a ready
// store. The catalog is probed for the quadruples table; a missing table is
// created together with its covering indexes, and a source that cannot be
// pinged, probed, or initialized aborts with an error. The caller must have
// imported a database/sql driver matching the engine (or the
// [WithDriverName] override).
func Open(engine, dsn string, opts ...Option) (*Store, error) {
	cfg := config{
		selectTimeout: DefaultTimeout,
		insertTimeout: DefaultTimeout,
		deleteTimeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	backend, err := quadstore.Open(quadstore.Config{
		Engine:        engine,
		DSN:           dsn,
		DriverName:    cfg.driverName,
		SelectTimeout: cfg.selectTimeout,
		InsertTimeout: cfg.insertTimeout,
		DeleteTimeout: cfg.deleteTimeout,
		Logger:        cfg.logger,
	})
	if err != nil {
		return nil, err
	}
	return &Store{backend: backend}, nil
}

// Add persists q. Adding a quadruple that is already present, or a nil
// quadruple, is a no-op.
func (s *Store) Add(ctx context.Context, q *rdf.Quad) error {
	if q == nil {
		return nil
	}
	return s.backend.InsertQuad(ctx, q)
}

// MergeGraph persists every quadruple of g under a single transaction.
// Quadruples already present are skipped; a nil or empty graph is a no-op.
func (s *Store) MergeGraph(ctx context.Context, g *rdf.Graph) error {
	if g == nil || g.Len() == 0 {
		return nil
	}
	return s.backend.MergeQuads(ctx, g.Quads())
}

// Remove deletes q. Removing an absent or nil quadruple is a no-op.
func (s *Store) Remove(ctx context.Context, q *rdf.Quad) error {
	if q == nil {
		return nil
	}
	return s.backend.DeleteQuad(ctx, q)
}

// RemoveMatching deletes every quadruple the pattern matches: all rows
// agreeing with every bound accessor, and only those. The empty pattern
// removes everything.
func (s *Store) RemoveMatching(ctx context.Context, p Pattern) error {
	return s.backend.DeleteByPattern(ctx, p)
}

// Clear removes every quadruple.
func (s *Store) Clear(ctx context.Context) error {
	return s.backend.DeleteByPattern(ctx, Pattern{})
}

// Contains reports whether q is persisted. A nil quadruple is never present.
func (s *Store) Contains(ctx context.Context, q *rdf.Quad) (bool, error) {
	if q == nil {
		return false, nil
	}
	return s.backend.Contains(ctx, q)
}

// Select materializes every quadruple the pattern matches. Order is whatever
// the engine returns.
func (s *Store) Select(ctx context.Context, p Pattern) ([]*rdf.Quad, error) {
	return s.backend.SelectByPattern(ctx, p)
}

// ForEach streams matching quadruples through fn without materializing the
// result set. An error from fn stops the scan and is returned unchanged.
func (s *Store) ForEach(ctx context.Context, p Pattern, fn func(*rdf.Quad) error) error {
	return s.backend.ForEachMatching(ctx, p, fn)
}

// Count returns the number of persisted quadruples.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.backend.Count(ctx)
}

// Optimize runs the engine's maintenance statements (statistics refresh,
// compaction). It executes under the caller's context alone.
func (s *Store) Optimize(ctx context.Context) error {
	return s.backend.Optimize(ctx)
}

// Engine names the engine the store was opened against.
func (s *Store) Engine() string {
	return s.backend.Engine()
}

// DB exposes the underlying connection pool for callers that need raw
// access, such as engine-specific pragmas.
func (s *Store) DB() *sql.DB {
	return s.backend.DB()
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.backend.Close()
}

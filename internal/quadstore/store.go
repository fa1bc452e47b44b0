package quadstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jward/tetra/internal/dialect"
)

// DefaultTimeout bounds each statement category when the caller configures
// nothing.
const DefaultTimeout = 120 * time.Second

// Config carries everything Open needs to stand a backend up.
type Config struct {
	// Engine selects the dialect: "sqlite", "postgres" or "mysql".
	Engine string
	// DSN is the engine's connection descriptor. Must be non-empty.
	DSN string
	// DriverName overrides the dialect's registered driver when set.
	DriverName string

	// Per-category statement timeouts. Zero values take DefaultTimeout.
	SelectTimeout time.Duration
	InsertTimeout time.Duration
	DeleteTimeout time.Duration

	// Logger receives debug-level operational events. Nil means silent.
	Logger *zap.Logger
}

// Backend executes the store against one engine through its dialect. All
// statement text is compiled once at open; execution goes through the
// connection pool per call, so methods are safe for concurrent use.
type Backend struct {
	db      *sql.DB
	dialect dialect.Dialect
	log     *zap.Logger

	stmts         map[Mask]patternStatements
	insertSQL     string
	deleteByIDSQL string
	containsSQL   string
	countSQL      string

	selectTimeout time.Duration
	insertTimeout time.Duration
	deleteTimeout time.Duration
}

// Open connects to the data source, probes the catalog, and creates the
// schema when the table is missing. A source that cannot be pinged, probed,
// or initialized aborts construction.
func Open(cfg Config) (*Backend, error) {
	if cfg.DSN == "" {
		return nil, errors.New("empty data source name")
	}
	d, err := dialect.Lookup(cfg.Engine)
	if err != nil {
		return nil, err
	}
	driver := cfg.DriverName
	if driver == "" {
		driver = d.DriverName()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	b := &Backend{
		db:            db,
		dialect:       d,
		log:           log,
		stmts:         compileStatements(d),
		insertSQL:     d.InsertQuadSQL(),
		deleteByIDSQL: "DELETE FROM " + dialect.TableName + " WHERE " + dialect.ColQuadrupleID + " = " + d.Placeholder(1),
		containsSQL:   "SELECT count(*) FROM " + dialect.TableName + " WHERE " + dialect.ColQuadrupleID + " = " + d.Placeholder(1),
		countSQL:      "SELECT count(*) FROM " + dialect.TableName,
		selectTimeout: timeoutOrDefault(cfg.SelectTimeout),
		insertTimeout: timeoutOrDefault(cfg.InsertTimeout),
		deleteTimeout: timeoutOrDefault(cfg.DeleteTimeout),
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.selectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	state, err := b.ensureSchema(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Debug("data source ready",
		zap.String("engine", d.Name()),
		zap.String("driver", driver),
		zap.Stringer("state", state))
	return b, nil
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}

// Close releases the connection pool.
func (b *Backend) Close() error {
	return b.db.Close()
}

// DB exposes the underlying pool for callers that need raw access.
func (b *Backend) DB() *sql.DB {
	return b.db
}

// Engine names the dialect the backend was opened with.
func (b *Backend) Engine() string {
	return b.dialect.Name()
}

// opContext bounds one operation with its category timeout. The deadline
// covers the whole transaction, begin through commit.
func (b *Backend) opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

package dialect

// sqliteDialect targets SQLite through either the cgo driver (registered as
// "sqlite3") or, via a driver-name override, the pure-Go one ("sqlite").
type sqliteDialect struct{}

var _ Dialect = sqliteDialect{}

func (sqliteDialect) Name() string       { return "sqlite" }
func (sqliteDialect) DriverName() string { return "sqlite3" }

func (sqliteDialect) Placeholder(int) string { return "?" }

func (sqliteDialect) ProbeTableSQL() string {
	return "SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?"
}

func (sqliteDialect) CreateTableSQL() string {
	return `CREATE TABLE quadruples (
	quadruple_id INTEGER NOT NULL PRIMARY KEY,
	flavor INTEGER NOT NULL,
	context TEXT NOT NULL,
	context_id INTEGER NOT NULL,
	subject TEXT NOT NULL,
	subject_id INTEGER NOT NULL,
	predicate TEXT NOT NULL,
	predicate_id INTEGER NOT NULL,
	object TEXT NOT NULL,
	object_id INTEGER NOT NULL
)`
}

func (sqliteDialect) CreateIndexSQL() []string { return indexDDL() }

func (d sqliteDialect) InsertQuadSQL() string {
	return insertSQL(d, "INSERT", "ON CONFLICT (quadruple_id) DO NOTHING")
}

func (sqliteDialect) OptimizeSQL() []string {
	return []string{"ANALYZE", "VACUUM"}
}

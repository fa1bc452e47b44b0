package dialect

import "strconv"

// postgresDialect targets PostgreSQL via lib/pq. Postgres folds unquoted
// identifiers to lowercase, which matches the schema's naming exactly, so
// nothing is ever quoted.
type postgresDialect struct{}

var _ Dialect = postgresDialect{}

func (postgresDialect) Name() string       { return "postgres" }
func (postgresDialect) DriverName() string { return "postgres" }

func (postgresDialect) Placeholder(index int) string {
	return "$" + strconv.Itoa(index)
}

func (postgresDialect) ProbeTableSQL() string {
	return "SELECT count(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1"
}

func (postgresDialect) CreateTableSQL() string {
	return `CREATE TABLE quadruples (
	quadruple_id BIGINT NOT NULL PRIMARY KEY,
	flavor SMALLINT NOT NULL,
	context TEXT NOT NULL,
	context_id BIGINT NOT NULL,
	subject TEXT NOT NULL,
	subject_id BIGINT NOT NULL,
	predicate TEXT NOT NULL,
	predicate_id BIGINT NOT NULL,
	object TEXT NOT NULL,
	object_id BIGINT NOT NULL
)`
}

func (postgresDialect) CreateIndexSQL() []string { return indexDDL() }

func (d postgresDialect) InsertQuadSQL() string {
	return insertSQL(d, "INSERT", "ON CONFLICT (quadruple_id) DO NOTHING")
}

func (postgresDialect) OptimizeSQL() []string {
	return []string{"VACUUM ANALYZE quadruples"}
}

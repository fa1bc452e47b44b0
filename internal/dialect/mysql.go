package dialect

// mysqlDialect targets MySQL and MariaDB via go-sql-driver/mysql. The id
// columns carry the hash values as signed BIGINT; only they are indexed, so
// the string columns can stay TEXT without prefix-index concerns.
type mysqlDialect struct{}

var _ Dialect = mysqlDialect{}

func (mysqlDialect) Name() string       { return "mysql" }
func (mysqlDialect) DriverName() string { return "mysql" }

func (mysqlDialect) Placeholder(int) string { return "?" }

func (mysqlDialect) ProbeTableSQL() string {
	return "SELECT count(*) FROM information_schema.tables WHERE table_schema = database() AND table_name = ?"
}

func (mysqlDialect) CreateTableSQL() string {
	return `CREATE TABLE quadruples (
	quadruple_id BIGINT NOT NULL PRIMARY KEY,
	flavor TINYINT NOT NULL,
	context TEXT NOT NULL,
	context_id BIGINT NOT NULL,
	subject TEXT NOT NULL,
	subject_id BIGINT NOT NULL,
	predicate TEXT NOT NULL,
	predicate_id BIGINT NOT NULL,
	object TEXT NOT NULL,
	object_id BIGINT NOT NULL
) ENGINE=InnoDB`
}

func (mysqlDialect) CreateIndexSQL() []string { return indexDDL() }

func (d mysqlDialect) InsertQuadSQL() string {
	return insertSQL(d, "INSERT IGNORE", "")
}

func (mysqlDialect) OptimizeSQL() []string {
	return []string{"OPTIMIZE TABLE quadruples"}
}

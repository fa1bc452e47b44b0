// Package dialect abstracts the engine-specific SQL the quadruple store
// needs: parameter placeholder syntax, the catalog probe for the quadruples
// table, DDL for the table and its covering indexes, the insert-if-absent
// idiom, and the maintenance statements. Everything else the store executes
// is engine-neutral and built once against [Dialect.Placeholder].
package dialect

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownEngine reports an engine name no dialect is registered for.
var ErrUnknownEngine = errors.New("unknown engine")

// TableName is the backing table probed, created, and addressed by every
// statement the store issues.
const TableName = "quadruples"

// Column names of the persisted row, lowercase on every engine so that
// identifier folding never bites.
const (
	ColQuadrupleID = "quadruple_id"
	ColFlavor      = "flavor"
	ColContext     = "context"
	ColContextID   = "context_id"
	ColSubject     = "subject"
	ColSubjectID   = "subject_id"
	ColPredicate   = "predicate"
	ColPredicateID = "predicate_id"
	ColObject      = "object"
	ColObjectID    = "object_id"
)

// InsertColumns is the column order of the insert statement; parameter
// bindings must follow it.
var InsertColumns = []string{
	ColQuadrupleID,
	ColFlavor,
	ColContext,
	ColContextID,
	ColSubject,
	ColSubjectID,
	ColPredicate,
	ColPredicateID,
	ColObject,
	ColObjectID,
}

// Dialect is the capability surface an engine must provide. Implementations
// are stateless values.
type Dialect interface {
	// Name is the engine name callers pass to Open ("sqlite", "postgres",
	// "mysql").
	Name() string

	// DriverName is the database/sql driver registration the engine uses
	// by default. Callers may override it at open time, e.g. to swap the
	// cgo sqlite driver for the pure-Go one.
	DriverName() string

	// Placeholder returns the parameter marker for the given 1-based
	// index: "?" everywhere it is positional, "$1", "$2", … on postgres.
	Placeholder(index int) string

	// ProbeTableSQL returns the catalog query that counts tables whose
	// name is bound as the statement's single parameter.
	ProbeTableSQL() string

	// CreateTableSQL returns the DDL for the quadruples table.
	CreateTableSQL() string

	// CreateIndexSQL returns the DDL for the seven covering indexes, in
	// creation order.
	CreateIndexSQL() []string

	// InsertQuadSQL returns the insert-if-absent statement keyed on
	// quadruple_id: inserting an existing quadruple is a no-op, never a
	// duplicate-key error. Parameters follow [InsertColumns].
	InsertQuadSQL() string

	// OptimizeSQL returns the engine's statistics/compaction statements,
	// executed outside a transaction.
	OptimizeSQL() []string
}

var dialects = map[string]Dialect{
	"sqlite":   sqliteDialect{},
	"postgres": postgresDialect{},
	"mysql":    mysqlDialect{},
}

// Lookup resolves an engine name to its dialect.
func Lookup(engine string) (Dialect, error) {
	d, ok := dialects[engine]
	if !ok {
		return nil, fmt.Errorf("%w %q: must be %s", ErrUnknownEngine, engine, strings.Join(Names(), ", "))
	}
	return d, nil
}

// Names returns the supported engine names, sorted.
func Names() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// indexDDL is shared by every engine: the index set is chosen so each
// accessor combination the pattern compiler produces is covered without a
// full scan, and none of the statements use engine-specific syntax.
func indexDDL() []string {
	return []string{
		"CREATE INDEX idx_quadruples_context_id ON quadruples (context_id)",
		"CREATE INDEX idx_quadruples_subject_id ON quadruples (subject_id)",
		"CREATE INDEX idx_quadruples_predicate_id ON quadruples (predicate_id)",
		"CREATE INDEX idx_quadruples_object_id_flavor ON quadruples (object_id, flavor)",
		"CREATE INDEX idx_quadruples_subject_predicate ON quadruples (subject_id, predicate_id)",
		"CREATE INDEX idx_quadruples_subject_object_flavor ON quadruples (subject_id, object_id, flavor)",
		"CREATE INDEX idx_quadruples_predicate_object_flavor ON quadruples (predicate_id, object_id, flavor)",
	}
}

// placeholderList returns the placeholder sequence "?, ?, …" or "$1, $2, …"
// for n parameters.
func placeholderList(d Dialect, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = d.Placeholder(i + 1)
	}
	return strings.Join(parts, ", ")
}

// insertSQL assembles the insert-if-absent statement from the engine's verb
// and conflict clause.
func insertSQL(d Dialect, verb, conflict string) string {
	var b strings.Builder
	b.WriteString(verb)
	b.WriteString(" INTO ")
	b.WriteString(TableName)
	b.WriteString(" (")
	b.WriteString(strings.Join(InsertColumns, ", "))
	b.WriteString(") VALUES (")
	b.WriteString(placeholderList(d, len(InsertColumns)))
	b.WriteString(")")
	if conflict != "" {
		b.WriteString(" ")
		b.WriteString(conflict)
	}
	return b.String()
}

// Package tetra persists RDF quadruples (context, subject, predicate,
// object) in a relational engine. SQLite, PostgreSQL and MySQL share one
// table layout and one pattern-indexed query compiler; everything
// engine-specific sits behind a small dialect seam.
//
// # Model
//
// A quadruple's terms are [rdf.Resource] values (IRIs and blank nodes) and
// [rdf.Literal] values (plain, language-tagged, or typed). Every term
// carries a 64-bit member identifier derived from its canonical string, and
// every quadruple a 64-bit identifier derived from its four terms, so
// identity never depends on engine sequences and inserting the same
// quadruple twice is a no-op.
//
// Rows are never updated in place: mutation is insert-if-absent and
// delete-whole-row only.
//
// # Usage
//
// Open a store, add quadruples, query by pattern:
//
//	store, err := tetra.Open("sqlite", "graph.db")
//	if err != nil { ... }
//	defer store.Close()
//
//	ctx := context.Background()
//	people := rdf.MustResource("http://example.org/people")
//	alice := rdf.MustResource("http://example.org/alice")
//	name := rdf.MustResource("http://xmlns.com/foaf/0.1/name")
//
//	q, err := rdf.NewQuad(people, alice, name, rdf.NewLiteral("Alice"))
//	err = store.Add(ctx, q)
//
//	quads, err := store.Select(ctx, tetra.Pattern{Context: &people})
//
// # Pattern queries
//
// A [Pattern] binds any subset of the five accessors: context, subject,
// predicate, object, literal. Queries compile to an indexed statement chosen
// by the accessor signature, never by scanning and filtering client-side.
// [Store.Select], [Store.ForEach] and [Store.RemoveMatching] take a pattern
// directly; the named wrappers like [Store.RemoveByContextSubject] cover the
// fixed signatures. Object and literal are mutually exclusive and are always
// matched together with the row's flavor, so a resource object never matches
// a literal row of the same text.
//
// # Engines
//
// The engine name passed to [Open] selects the dialect:
//
//   - "sqlite": driver "sqlite3" (cgo). Pass [WithDriverName]("sqlite") to
//     use the pure-Go driver instead.
//   - "postgres": driver "postgres".
//   - "mysql": driver "mysql".
//
// The store registers no drivers itself; blank-import the one you use:
//
//	import _ "github.com/mattn/go-sqlite3"
//
// # Schema lifecycle
//
// [Open] probes the engine catalog for the quadruples table and creates the
// table and its seven covering indexes when missing. A source that cannot be
// pinged, probed, or initialized aborts Open. Statement timeouts default to
// [DefaultTimeout] per category and are adjusted with [WithSelectTimeout],
// [WithInsertTimeout] and [WithDeleteTimeout].
package tetra

// Package quadstore is the engine-agnostic SQL core of the quadruple store:
// the accessor-signature compiler, the schema lifecycle, the transactional
// mutation paths, and the row materializer. Engine specifics stay behind
// [dialect.Dialect]; everything here is built once per open against the
// engine's placeholder syntax and executed per call through the connection
// pool, so a Backend is safe for concurrent use.
package quadstore

import (
	"errors"
	"strings"

	"github.com/jward/tetra/internal/dialect"
	"github.com/jward/tetra/rdf"
)

// ErrObjectAndLiteral reports a pattern binding both the object and the
// literal accessor. The two address the same positional slot; a caller
// doing this is confused and must be told, not second-guessed.
var ErrObjectAndLiteral = errors.New("pattern binds both object and literal accessors")

// Pattern binds up to five optional accessors. A nil field leaves its
// accessor unbound; a pattern with no bound accessors addresses every row.
// Object and Literal are mutually exclusive.
type Pattern struct {
	Context   *rdf.Resource
	Subject   *rdf.Resource
	Predicate *rdf.Resource
	Object    *rdf.Resource
	Literal   *rdf.Literal
}

// Mask identifies which accessors a pattern binds, one bit per accessor in
// fixed context, subject, predicate, object, literal order.
type Mask uint8

const (
	MaskContext Mask = 1 << iota
	MaskSubject
	MaskPredicate
	MaskObject
	MaskLiteral

	maskLimit = MaskLiteral<<1 - 1
)

// Signature renders the mask as the canonical accessor letters, e.g. "CP"
// for a context+predicate pattern. The empty mask renders as "" (full scan).
func (m Mask) Signature() string {
	var b strings.Builder
	if m&MaskContext != 0 {
		b.WriteByte('C')
	}
	if m&MaskSubject != 0 {
		b.WriteByte('S')
	}
	if m&MaskPredicate != 0 {
		b.WriteByte('P')
	}
	if m&MaskObject != 0 {
		b.WriteByte('O')
	}
	if m&MaskLiteral != 0 {
		b.WriteByte('L')
	}
	return b.String()
}

// Mask derives the pattern's accessor signature, failing fast when both
// object and literal are bound.
func (p Pattern) Mask() (Mask, error) {
	if p.Object != nil && p.Literal != nil {
		return 0, ErrObjectAndLiteral
	}
	var m Mask
	if p.Context != nil {
		m |= MaskContext
	}
	if p.Subject != nil {
		m |= MaskSubject
	}
	if p.Predicate != nil {
		m |= MaskPredicate
	}
	if p.Object != nil {
		m |= MaskObject
	}
	if p.Literal != nil {
		m |= MaskLiteral
	}
	return m, nil
}

// args returns the parameter bindings for a compiled statement of mask m,
// in the fixed order the where clause binds them: context_id, subject_id,
// predicate_id, object_id, flavor.
func (p Pattern) args(m Mask) []any {
	if m == 0 {
		return nil
	}
	args := make([]any, 0, 5)
	if m&MaskContext != 0 {
		args = append(args, p.Context.MemberID())
	}
	if m&MaskSubject != 0 {
		args = append(args, p.Subject.MemberID())
	}
	if m&MaskPredicate != 0 {
		args = append(args, p.Predicate.MemberID())
	}
	switch {
	case m&MaskObject != 0:
		args = append(args, p.Object.MemberID(), int64(rdf.ResourceObject))
	case m&MaskLiteral != 0:
		args = append(args, p.Literal.MemberID(), int64(rdf.LiteralObject))
	}
	return args
}

// patternStatements is one signature's compiled statement pair. The select
// and delete share the predicate verbatim; only the projection differs.
type patternStatements struct {
	selectSQL string
	deleteSQL string
}

// selectColumns is the read projection the materializer consumes.
var selectColumns = []string{
	dialect.ColFlavor,
	dialect.ColContext,
	dialect.ColSubject,
	dialect.ColPredicate,
	dialect.ColObject,
}

// compileStatements builds the signature table for a dialect. Every valid
// mask maps to exact statement text; the eight masks binding both object and
// literal are skipped since [Pattern.Mask] never produces them. The empty
// mask compiles to the full scan and the full delete (clear).
func compileStatements(d dialect.Dialect) map[Mask]patternStatements {
	selectPrefix := "SELECT " + strings.Join(selectColumns, ", ") + " FROM " + dialect.TableName
	deletePrefix := "DELETE FROM " + dialect.TableName

	stmts := make(map[Mask]patternStatements, int(maskLimit)+1)
	for m := Mask(0); m <= maskLimit; m++ {
		if m&MaskObject != 0 && m&MaskLiteral != 0 {
			continue
		}
		where := whereClause(d, m)
		stmts[m] = patternStatements{
			selectSQL: selectPrefix + where,
			deleteSQL: deletePrefix + where,
		}
	}
	return stmts
}

// whereClause renders the minimal predicate for a mask: equality on each
// bound accessor's id column, plus the flavor filter whenever the object
// slot participates. Resource and literal objects share the object_id hash
// space, so an object or literal accessor without the flavor filter would
// cross-match the other kind.
func whereClause(d dialect.Dialect, m Mask) string {
	if m == 0 {
		return ""
	}
	conds := make([]string, 0, 5)
	add := func(col string) {
		conds = append(conds, col+" = "+d.Placeholder(len(conds)+1))
	}
	if m&MaskContext != 0 {
		add(dialect.ColContextID)
	}
	if m&MaskSubject != 0 {
		add(dialect.ColSubjectID)
	}
	if m&MaskPredicate != 0 {
		add(dialect.ColPredicateID)
	}
	if m&(MaskObject|MaskLiteral) != 0 {
		add(dialect.ColObjectID)
		add(dialect.ColFlavor)
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

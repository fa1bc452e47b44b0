package quadstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jward/tetra/rdf"
)

// SelectByPattern materializes every quadruple the pattern matches. Order is
// whatever the engine returns.
func (b *Backend) SelectByPattern(ctx context.Context, p Pattern) ([]*rdf.Quad, error) {
	var quads []*rdf.Quad
	err := b.ForEachMatching(ctx, p, func(q *rdf.Quad) error {
		quads = append(quads, q)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quads, nil
}

// ForEachMatching streams matching quadruples through fn without holding the
// result set in memory. An error from fn stops the scan and is returned
// unchanged.
func (b *Backend) ForEachMatching(ctx context.Context, p Pattern, fn func(*rdf.Quad) error) error {
	m, err := p.Mask()
	if err != nil {
		return err
	}
	ctx, cancel := b.opContext(ctx, b.selectTimeout)
	defer cancel()

	rows, err := b.db.QueryContext(ctx, b.stmts[m].selectSQL, p.args(m)...)
	if err != nil {
		return fmt.Errorf("select by pattern %q: %w", m.Signature(), err)
	}
	defer rows.Close()

	for rows.Next() {
		q, err := scanQuad(rows)
		if err != nil {
			return err
		}
		if err := fn(q); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("select by pattern %q: %w", m.Signature(), err)
	}
	return nil
}

// Contains reports whether the quadruple with q's identifier is persisted.
func (b *Backend) Contains(ctx context.Context, q *rdf.Quad) (bool, error) {
	ctx, cancel := b.opContext(ctx, b.selectTimeout)
	defer cancel()

	var n int64
	if err := b.db.QueryRowContext(ctx, b.containsSQL, q.ID()).Scan(&n); err != nil {
		return false, fmt.Errorf("contains quadruple %d: %w", q.ID(), err)
	}
	return n > 0, nil
}

// Count returns the number of persisted quadruples.
func (b *Backend) Count(ctx context.Context) (int64, error) {
	ctx, cancel := b.opContext(ctx, b.selectTimeout)
	defer cancel()

	var n int64
	if err := b.db.QueryRowContext(ctx, b.countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count quadruples: %w", err)
	}
	return n, nil
}

// scanQuad reads one result row and hands it to the materializer.
func scanQuad(rows *sql.Rows) (*rdf.Quad, error) {
	var flavor int64
	var c, s, p, o string
	if err := rows.Scan(&flavor, &c, &s, &p, &o); err != nil {
		return nil, fmt.Errorf("scan quadruple row: %w", err)
	}
	return materializeQuad(rdf.Flavor(flavor), c, s, p, o)
}

// materializeQuad is the codec's inverse: it parses the persisted canonical
// strings back into terms and reassembles the quadruple. The content-derived
// identifiers recompute to exactly the persisted values, so none of the id
// columns need to be read back.
func materializeQuad(flavor rdf.Flavor, contextTerm, subjectTerm, predicateTerm, objectTerm string) (*rdf.Quad, error) {
	c, err := parseResource(contextTerm, "context")
	if err != nil {
		return nil, err
	}
	s, err := parseResource(subjectTerm, "subject")
	if err != nil {
		return nil, err
	}
	p, err := parseResource(predicateTerm, "predicate")
	if err != nil {
		return nil, err
	}
	o, err := rdf.ParseTerm(objectTerm)
	if err != nil {
		return nil, fmt.Errorf("parse object term: %w", err)
	}
	if o.TermFlavor() != flavor {
		return nil, fmt.Errorf("row flavor %s does not match object term %q", flavor, objectTerm)
	}
	q, err := rdf.NewQuad(c, s, p, o)
	if err != nil {
		return nil, fmt.Errorf("materialize quadruple: %w", err)
	}
	return q, nil
}

func parseResource(s, slot string) (rdf.Resource, error) {
	term, err := rdf.ParseTerm(s)
	if err != nil {
		return rdf.Resource{}, fmt.Errorf("parse %s term: %w", slot, err)
	}
	r, ok := term.(rdf.Resource)
	if !ok {
		return rdf.Resource{}, fmt.Errorf("%s term %q is not a resource", slot, s)
	}
	return r, nil
}

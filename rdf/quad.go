package rdf

import (
	"fmt"
	"strings"
)

// Quad is an immutable RDF statement plus its named context: (Context,
// Subject, Predicate, Object) where the object is a [Resource] or a
// [Literal]. The flavor tag and the 64-bit quadruple identifier are derived
// once at construction; the identifier is the content hash of the four
// canonical term strings, so two quads with equal terms always carry equal
// identifiers, and it serves as the store's uniqueness key.
type Quad struct {
	context   Resource
	subject   Resource
	predicate Resource
	object    Term
	flavor    Flavor
	id        int64
}

// NewQuad builds a quadruple. The context and subject may be IRIs or blank
// nodes, the predicate must be an IRI, and the object must be a non-zero
// [Resource] or a [Literal].
func NewQuad(context, subject, predicate Resource, object Term) (*Quad, error) {
	if context.isZero() {
		return nil, fmt.Errorf("rdf: quad is missing a context")
	}
	if subject.isZero() {
		return nil, fmt.Errorf("rdf: quad is missing a subject")
	}
	if predicate.isZero() {
		return nil, fmt.Errorf("rdf: quad is missing a predicate")
	}
	if predicate.IsBlank() {
		return nil, fmt.Errorf("rdf: predicate %s must be an IRI, not a blank node", predicate)
	}

	var flavor Flavor
	switch o := object.(type) {
	case Resource:
		if o.isZero() {
			return nil, fmt.Errorf("rdf: quad is missing an object")
		}
		flavor = ResourceObject
	case Literal:
		flavor = LiteralObject
	case nil:
		return nil, fmt.Errorf("rdf: quad is missing an object")
	default:
		return nil, fmt.Errorf("rdf: object must be a Resource or a Literal, got %T", object)
	}

	q := &Quad{
		context:   context,
		subject:   subject,
		predicate: predicate,
		object:    object,
		flavor:    flavor,
	}
	q.id = hashTerm(strings.Join([]string{
		context.String(),
		subject.String(),
		predicate.String(),
		object.String(),
	}, "\x00"))
	return q, nil
}

// Context returns the context (named graph) term.
func (q *Quad) Context() Resource { return q.context }

// Subject returns the subject term.
func (q *Quad) Subject() Resource { return q.subject }

// Predicate returns the predicate term.
func (q *Quad) Predicate() Resource { return q.predicate }

// Object returns the object term; its dynamic type is [Resource] or
// [Literal] according to [Quad.Flavor].
func (q *Quad) Object() Term { return q.object }

// Flavor reports whether the object is a resource or a literal.
func (q *Quad) Flavor() Flavor { return q.flavor }

// ID returns the content-derived 64-bit quadruple identifier.
func (q *Quad) ID() int64 { return q.id }

// String returns the quad as an N-Quads statement.
func (q *Quad) String() string {
	return fmt.Sprintf("%s %s %s %s .", q.subject, q.predicate, q.object, q.context)
}

// Equal reports whether two quads have equal terms in all four positions.
func (q *Quad) Equal(other *Quad) bool {
	if q == nil || other == nil {
		return q == other
	}
	return q.id == other.id && q.String() == other.String()
}

// Graph is a set of quadruples sharing one context term. Adding a statement
// that is already present is a no-op, mirroring the idempotent insert of the
// backing store.
type Graph struct {
	context Resource
	quads   []*Quad
	seen    map[int64]struct{}
}

// NewGraph returns an empty graph over the given context.
func NewGraph(context Resource) (*Graph, error) {
	if context.isZero() {
		return nil, fmt.Errorf("rdf: graph is missing a context")
	}
	return &Graph{context: context, seen: make(map[int64]struct{})}, nil
}

// Context returns the graph's context term.
func (g *Graph) Context() Resource { return g.context }

// Add appends the statement (subject, predicate, object) under the graph's
// context and returns the resulting quad. Duplicate statements are skipped.
func (g *Graph) Add(subject, predicate Resource, object Term) (*Quad, error) {
	q, err := NewQuad(g.context, subject, predicate, object)
	if err != nil {
		return nil, err
	}
	if _, dup := g.seen[q.ID()]; dup {
		return q, nil
	}
	g.seen[q.ID()] = struct{}{}
	g.quads = append(g.quads, q)
	return q, nil
}

// Len returns the number of distinct statements in the graph.
func (g *Graph) Len() int { return len(g.quads) }

// Quads returns the graph's statements in insertion order. The returned
// slice is shared; callers must not modify it.
func (g *Graph) Quads() []*Quad { return g.quads }

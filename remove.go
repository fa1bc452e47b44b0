package tetra

import (
	"context"

	"github.com/jward/tetra/rdf"
)

// Named pattern-delete wrappers, one per accessor signature. Each binds its
// arguments into a [Pattern] and delegates to [Store.RemoveMatching]; the
// and-semantics, flavor handling and indexing are the pattern compiler's.

// RemoveByContext deletes every quadruple in context c.
func (s *Store) RemoveByContext(ctx context.Context, c rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Context: &c})
}

// RemoveBySubject deletes every quadruple whose subject is subj.
func (s *Store) RemoveBySubject(ctx context.Context, subj rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Subject: &subj})
}

// RemoveByPredicate deletes every quadruple whose predicate is pred.
func (s *Store) RemoveByPredicate(ctx context.Context, pred rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Predicate: &pred})
}

// RemoveByObject deletes every quadruple whose object is the resource obj.
// Literal rows of the same text are untouched.
func (s *Store) RemoveByObject(ctx context.Context, obj rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Object: &obj})
}

// RemoveByLiteral deletes every quadruple whose object is the literal lit.
// Resource rows of the same text are untouched.
func (s *Store) RemoveByLiteral(ctx context.Context, lit rdf.Literal) error {
	return s.RemoveMatching(ctx, Pattern{Literal: &lit})
}

func (s *Store) RemoveByContextSubject(ctx context.Context, c, subj rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Context: &c, Subject: &subj})
}

func (s *Store) RemoveByContextPredicate(ctx context.Context, c, pred rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Context: &c, Predicate: &pred})
}

func (s *Store) RemoveByContextObject(ctx context.Context, c, obj rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Context: &c, Object: &obj})
}

func (s *Store) RemoveByContextLiteral(ctx context.Context, c rdf.Resource, lit rdf.Literal) error {
	return s.RemoveMatching(ctx, Pattern{Context: &c, Literal: &lit})
}

func (s *Store) RemoveBySubjectPredicate(ctx context.Context, subj, pred rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Subject: &subj, Predicate: &pred})
}

func (s *Store) RemoveBySubjectObject(ctx context.Context, subj, obj rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Subject: &subj, Object: &obj})
}

func (s *Store) RemoveBySubjectLiteral(ctx context.Context, subj rdf.Resource, lit rdf.Literal) error {
	return s.RemoveMatching(ctx, Pattern{Subject: &subj, Literal: &lit})
}

func (s *Store) RemoveByPredicateObject(ctx context.Context, pred, obj rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Predicate: &pred, Object: &obj})
}

func (s *Store) RemoveByPredicateLiteral(ctx context.Context, pred rdf.Resource, lit rdf.Literal) error {
	return s.RemoveMatching(ctx, Pattern{Predicate: &pred, Literal: &lit})
}

func (s *Store) RemoveByContextSubjectPredicate(ctx context.Context, c, subj, pred rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Context: &c, Subject: &subj, Predicate: &pred})
}

func (s *Store) RemoveByContextSubjectObject(ctx context.Context, c, subj, obj rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Context: &c, Subject: &subj, Object: &obj})
}

func (s *Store) RemoveByContextSubjectLiteral(ctx context.Context, c, subj rdf.Resource, lit rdf.Literal) error {
	return s.RemoveMatching(ctx, Pattern{Context: &c, Subject: &subj, Literal: &lit})
}

func (s *Store) RemoveByContextPredicateObject(ctx context.Context, c, pred, obj rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Context: &c, Predicate: &pred, Object: &obj})
}

func (s *Store) RemoveByContextPredicateLiteral(ctx context.Context, c, pred rdf.Resource, lit rdf.Literal) error {
	return s.RemoveMatching(ctx, Pattern{Context: &c, Predicate: &pred, Literal: &lit})
}

func (s *Store) RemoveBySubjectPredicateObject(ctx context.Context, subj, pred, obj rdf.Resource) error {
	return s.RemoveMatching(ctx, Pattern{Subject: &subj, Predicate: &pred, Object: &obj})
}

func (s *Store) RemoveBySubjectPredicateLiteral(ctx context.Context, subj, pred rdf.Resource, lit rdf.Literal) error {
	return s.RemoveMatching(ctx, Pattern{Subject: &subj, Predicate: &pred, Literal: &lit})
}

package quadstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jward/tetra/rdf"
)

// InsertQuad writes one quadruple. A quadruple whose identifier is already
// present leaves the table untouched; the call still succeeds.
func (b *Backend) InsertQuad(ctx context.Context, q *rdf.Quad) error {
	ctx, cancel := b.opContext(ctx, b.insertTimeout)
	defer cancel()

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, b.insertSQL, insertArgs(q)...); err != nil {
		return fmt.Errorf("insert quadruple %d: %w", q.ID(), err)
	}
	return tx.Commit()
}

// MergeQuads writes a batch of quadruples under a single transaction. Either
// every absent quadruple lands or none do; duplicates within the batch and
// against the table are no-ops.
func (b *Backend) MergeQuads(ctx context.Context, quads []*rdf.Quad) error {
	if len(quads) == 0 {
		return nil
	}
	ctx, cancel := b.opContext(ctx, b.insertTimeout)
	defer cancel()

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range quads {
		if _, err := tx.ExecContext(ctx, b.insertSQL, insertArgs(q)...); err != nil {
			return fmt.Errorf("merge quadruple %d: %w", q.ID(), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	b.log.Debug("merged quadruples", zap.Int("count", len(quads)))
	return nil
}

// DeleteQuad removes the quadruple with q's identifier. Deleting an absent
// quadruple succeeds.
func (b *Backend) DeleteQuad(ctx context.Context, q *rdf.Quad) error {
	ctx, cancel := b.opContext(ctx, b.deleteTimeout)
	defer cancel()

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, b.deleteByIDSQL, q.ID()); err != nil {
		return fmt.Errorf("delete quadruple %d: %w", q.ID(), err)
	}
	return tx.Commit()
}

// DeleteByPattern removes every quadruple the pattern matches. The empty
// pattern clears the table.
func (b *Backend) DeleteByPattern(ctx context.Context, p Pattern) error {
	m, err := p.Mask()
	if err != nil {
		return err
	}
	ctx, cancel := b.opContext(ctx, b.deleteTimeout)
	defer cancel()

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, b.stmts[m].deleteSQL, p.args(m)...)
	if err != nil {
		return fmt.Errorf("delete by pattern %q: %w", m.Signature(), err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil {
		b.log.Debug("deleted by pattern",
			zap.String("signature", m.Signature()),
			zap.Int64("rows", affected))
	}
	return nil
}

// Optimize runs the engine's maintenance statements. They execute outside
// any transaction and under the caller's context alone; maintenance has no
// natural statement-category timeout.
func (b *Backend) Optimize(ctx context.Context) error {
	for _, stmt := range b.dialect.OptimizeSQL() {
		if _, err := b.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("optimize (%s): %w", stmt, err)
		}
		b.log.Debug("optimize statement done", zap.String("statement", stmt))
	}
	return nil
}

// insertArgs lays a quadruple out in the persisted column order: identifier,
// flavor, then canonical string and member identifier for each slot.
func insertArgs(q *rdf.Quad) []any {
	c, s, p, o := q.Context(), q.Subject(), q.Predicate(), q.Object()
	return []any{
		q.ID(),
		int64(q.Flavor()),
		c.String(), c.MemberID(),
		s.String(), s.MemberID(),
		p.String(), p.MemberID(),
		o.String(), o.MemberID(),
	}
}

package quadstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/tetra/rdf"
)

// seedQuads inserts the quads and fails the test on any error.
func seedQuads(t *testing.T, b *Backend, quads ...*rdf.Quad) {
	t.Helper()
	for _, q := range quads {
		require.NoError(t, b.InsertQuad(t.Context(), q))
	}
}

func countQuads(t *testing.T, b *Backend) int64 {
	t.Helper()
	n, err := b.Count(t.Context())
	require.NoError(t, err)
	return n
}

// ============================================================================
// Insert
// ============================================================================

func TestInsertQuad_Idempotent(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	q := mustQuad(t,
		"http://example.org/ctx",
		"http://example.org/s",
		"http://example.org/p",
		rdf.MustResource("http://example.org/o"))

	require.NoError(t, b.InsertQuad(t.Context(), q))
	require.NoError(t, b.InsertQuad(t.Context(), q))

	assert.Equal(t, int64(1), countQuads(t, b))
}

func TestInsertQuad_DistinctQuads(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	seedQuads(t, b,
		mustQuad(t, "http://example.org/ctx", "http://example.org/s",
			"http://example.org/p", rdf.MustResource("http://example.org/o")),
		mustQuad(t, "http://example.org/ctx", "http://example.org/s",
			"http://example.org/p", rdf.NewLiteral("o")),
		mustQuad(t, "http://example.org/ctx2", "http://example.org/s",
			"http://example.org/p", rdf.MustResource("http://example.org/o")),
	)

	assert.Equal(t, int64(3), countQuads(t, b))
}

// ============================================================================
// Merge
// ============================================================================

func TestMergeQuads_SingleTransaction(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	q1 := mustQuad(t, "http://example.org/g", "http://example.org/a",
		"http://example.org/p", rdf.NewLiteral("1"))
	q2 := mustQuad(t, "http://example.org/g", "http://example.org/b",
		"http://example.org/p", rdf.NewLiteral("2"))

	// q1 is already present and the batch repeats q2; both are no-ops.
	seedQuads(t, b, q1)
	require.NoError(t, b.MergeQuads(t.Context(), []*rdf.Quad{q1, q2, q2}))

	assert.Equal(t, int64(2), countQuads(t, b))
}

func TestMergeQuads_EmptyBatch(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	require.NoError(t, b.MergeQuads(t.Context(), nil))
	assert.Equal(t, int64(0), countQuads(t, b))
}

// ============================================================================
// Delete
// ============================================================================

func TestDeleteQuad(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	keep := mustQuad(t, "http://example.org/ctx", "http://example.org/s",
		"http://example.org/p", rdf.NewLiteral("keep"))
	drop := mustQuad(t, "http://example.org/ctx", "http://example.org/s",
		"http://example.org/p", rdf.NewLiteral("drop"))
	seedQuads(t, b, keep, drop)

	require.NoError(t, b.DeleteQuad(t.Context(), drop))

	ok, err := b.Contains(t.Context(), drop)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = b.Contains(t.Context(), keep)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteQuad_AbsentSucceeds(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	q := mustQuad(t, "http://example.org/ctx", "http://example.org/s",
		"http://example.org/p", rdf.NewLiteral("never inserted"))

	assert.NoError(t, b.DeleteQuad(t.Context(), q))
}

func TestDeleteByPattern_Context(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	inCtx1 := mustQuad(t, "http://example.org/g1", "http://example.org/s",
		"http://example.org/p", rdf.NewLiteral("a"))
	alsoCtx1 := mustQuad(t, "http://example.org/g1", "http://example.org/s2",
		"http://example.org/p", rdf.MustResource("http://example.org/o"))
	inCtx2 := mustQuad(t, "http://example.org/g2", "http://example.org/s",
		"http://example.org/p", rdf.NewLiteral("a"))
	seedQuads(t, b, inCtx1, alsoCtx1, inCtx2)

	g1 := rdf.MustResource("http://example.org/g1")
	require.NoError(t, b.DeleteByPattern(t.Context(), Pattern{Context: &g1}))

	assert.Equal(t, int64(1), countQuads(t, b))
	ok, err := b.Contains(t.Context(), inCtx2)
	require.NoError(t, err)
	assert.True(t, ok, "rows outside the pattern must survive")
}

func TestDeleteByPattern_SubjectLiteral(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	s := rdf.MustResource("http://example.org/s")
	lit := rdf.NewLiteral("chair")

	match := mustQuad(t, "http://example.org/g", "http://example.org/s",
		"http://example.org/p", lit)
	sameSubjectResource := mustQuad(t, "http://example.org/g", "http://example.org/s",
		"http://example.org/p", rdf.MustResource("http://example.org/chair"))
	otherSubject := mustQuad(t, "http://example.org/g", "http://example.org/s2",
		"http://example.org/p", lit)
	seedQuads(t, b, match, sameSubjectResource, otherSubject)

	require.NoError(t, b.DeleteByPattern(t.Context(), Pattern{Subject: &s, Literal: &lit}))

	assert.Equal(t, int64(2), countQuads(t, b))
	ok, err := b.Contains(t.Context(), match)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteByPattern_EmptyClearsTable(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	seedQuads(t, b,
		mustQuad(t, "http://example.org/g1", "http://example.org/s",
			"http://example.org/p", rdf.NewLiteral("a")),
		mustQuad(t, "http://example.org/g2", "http://example.org/s",
			"http://example.org/p", rdf.NewLiteral("b")),
	)

	require.NoError(t, b.DeleteByPattern(t.Context(), Pattern{}))
	assert.Equal(t, int64(0), countQuads(t, b))
}

func TestDeleteByPattern_ObjectAndLiteral(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	err := b.DeleteByPattern(t.Context(), Pattern{
		Object:  resPtr("http://example.org/o"),
		Literal: litPtr("chair"),
	})
	assert.ErrorIs(t, err, ErrObjectAndLiteral)
}

// ============================================================================
// Optimize
// ============================================================================

func TestOptimize(t *testing.T) {
	t.Parallel()

	b := newTestBackend(t)
	seedQuads(t, b,
		mustQuad(t, "http://example.org/g", "http://example.org/s",
			"http://example.org/p", rdf.NewLiteral("a")),
	)

	require.NoError(t, b.Optimize(t.Context()))
	assert.Equal(t, int64(1), countQuads(t, b), "maintenance must not lose rows")
}

package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCtx  = MustResource("http://example.org/ctx")
	testSubj = MustResource("http://example.org/s")
	testPred = MustResource("http://example.org/p")
	testObj  = MustResource("http://example.org/o")
)

func TestNewQuad_ResourceObject(t *testing.T) {
	t.Parallel()

	q, err := NewQuad(testCtx, testSubj, testPred, testObj)
	require.NoError(t, err)

	assert.True(t, q.Context().Equal(testCtx))
	assert.True(t, q.Subject().Equal(testSubj))
	assert.True(t, q.Predicate().Equal(testPred))
	assert.Equal(t, testObj, q.Object())
	assert.Equal(t, ResourceObject, q.Flavor())
	assert.NotZero(t, q.ID())
}

func TestNewQuad_LiteralObject(t *testing.T) {
	t.Parallel()

	q, err := NewQuad(testCtx, testSubj, testPred, NewLiteral("v"))
	require.NoError(t, err)

	assert.Equal(t, LiteralObject, q.Flavor())
}

func TestNewQuad_IDIsContentDerived(t *testing.T) {
	t.Parallel()

	q1, err := NewQuad(testCtx, testSubj, testPred, testObj)
	require.NoError(t, err)
	q2, err := NewQuad(testCtx, testSubj, testPred, testObj)
	require.NoError(t, err)

	assert.Equal(t, q1.ID(), q2.ID(), "equal quads carry equal identifiers")
	assert.True(t, q1.Equal(q2))

	// Changing any single slot changes the identifier.
	other := MustResource("http://example.org/other")
	for name, variant := range map[string][4]Resource{
		"context":   {other, testSubj, testPred, testObj},
		"subject":   {testCtx, other, testPred, testObj},
		"predicate": {testCtx, testSubj, other, testObj},
		"object":    {testCtx, testSubj, testPred, other},
	} {
		q, err := NewQuad(variant[0], variant[1], variant[2], variant[3])
		require.NoError(t, err)
		assert.NotEqual(t, q1.ID(), q.ID(), "varying the %s must change the ID", name)
		assert.False(t, q1.Equal(q))
	}
}

type fakeTerm struct{}

func (fakeTerm) String() string     { return "fake" }
func (fakeTerm) MemberID() int64    { return 0 }
func (fakeTerm) TermFlavor() Flavor { return ResourceObject }

func TestNewQuad_Validation(t *testing.T) {
	t.Parallel()

	blank := NewBlankNode()

	cases := []struct {
		name    string
		context Resource
		subject Resource
		pred    Resource
		object  Term
	}{
		{"zero context", Resource{}, testSubj, testPred, testObj},
		{"zero subject", testCtx, Resource{}, testPred, testObj},
		{"zero predicate", testCtx, testSubj, Resource{}, testObj},
		{"blank predicate", testCtx, testSubj, blank, testObj},
		{"zero object", testCtx, testSubj, testPred, Resource{}},
		{"nil object", testCtx, testSubj, testPred, nil},
		{"foreign object type", testCtx, testSubj, testPred, fakeTerm{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewQuad(tc.context, tc.subject, tc.pred, tc.object)
			assert.Error(t, err)
		})
	}
}

func TestNewQuad_BlankContextAndSubjectAllowed(t *testing.T) {
	t.Parallel()

	q, err := NewQuad(NewBlankNode(), NewBlankNode(), testPred, NewBlankNode())
	require.NoError(t, err)
	assert.Equal(t, ResourceObject, q.Flavor())
}

func TestQuadString(t *testing.T) {
	t.Parallel()

	q, err := NewQuad(testCtx, testSubj, testPred, NewLiteral("v"))
	require.NoError(t, err)

	assert.Equal(t,
		`<http://example.org/s> <http://example.org/p> "v" <http://example.org/ctx> .`,
		q.String())
}

func TestQuadEqual_Nil(t *testing.T) {
	t.Parallel()

	q, err := NewQuad(testCtx, testSubj, testPred, testObj)
	require.NoError(t, err)

	var nilQuad *Quad
	assert.False(t, q.Equal(nil))
	assert.True(t, nilQuad.Equal(nil))
}

// ============================================================================
// Graphs
// ============================================================================

func TestNewGraph_RequiresContext(t *testing.T) {
	t.Parallel()

	_, err := NewGraph(Resource{})
	assert.Error(t, err)
}

func TestGraphAdd(t *testing.T) {
	t.Parallel()

	g, err := NewGraph(testCtx)
	require.NoError(t, err)
	assert.True(t, g.Context().Equal(testCtx))

	q1, err := g.Add(testSubj, testPred, testObj)
	require.NoError(t, err)
	assert.True(t, q1.Context().Equal(testCtx), "graph stamps its own context")

	_, err = g.Add(testSubj, testPred, NewLiteral("v"))
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())

	// Duplicate statements are skipped.
	dup, err := g.Add(testSubj, testPred, testObj)
	require.NoError(t, err)
	assert.Equal(t, q1.ID(), dup.ID())
	assert.Equal(t, 2, g.Len())

	quads := g.Quads()
	require.Len(t, quads, 2)
	assert.Equal(t, q1.ID(), quads[0].ID(), "insertion order is preserved")
}

func TestGraphAdd_InvalidStatement(t *testing.T) {
	t.Parallel()

	g, err := NewGraph(testCtx)
	require.NoError(t, err)

	_, err = g.Add(testSubj, NewBlankNode(), testObj)
	assert.Error(t, err, "blank predicate must be rejected")
	assert.Equal(t, 0, g.Len())
}

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/tetra/rdf"
)

func TestValidateFormat(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateFormat("json"))
	assert.NoError(t, validateFormat("text"))

	err := validateFormat("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "yaml"`)
	assert.Contains(t, err.Error(), "json or text")
}

func TestSqliteDSN(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "graph.db"+sqliteDSNParams, sqliteDSN("graph.db"))
	assert.Equal(t, ":memory:", sqliteDSN(":memory:"))
	assert.Equal(t, "file:graph.db", sqliteDSN("file:graph.db"))
	assert.Equal(t, "graph.db?_busy_timeout=500", sqliteDSN("graph.db?_busy_timeout=500"))
}

func TestMergeConfig(t *testing.T) {
	t.Parallel()

	var file fileConfig
	file.Engine = "postgres"
	file.DSN = "postgres://tetra@localhost/graphs"
	file.Format = "text"
	file.Timeouts.SelectSeconds = 30
	file.Timeouts.DeleteSeconds = 90

	s := settings{engine: "sqlite", dsn: "flag.db", format: "json"}

	// Only --dsn was given on the command line.
	changed := func(name string) bool { return name == "dsn" }
	merged := mergeConfig(s, changed, file)

	assert.Equal(t, "postgres", merged.engine)
	assert.Equal(t, "flag.db", merged.dsn)
	assert.Equal(t, "text", merged.format)
	assert.Equal(t, 30*time.Second, merged.selectTimeout)
	assert.Zero(t, merged.insertTimeout)
	assert.Equal(t, 90*time.Second, merged.deleteTimeout)
}

func TestMergeConfig_EmptyFile(t *testing.T) {
	t.Parallel()

	s := settings{engine: "sqlite", dsn: "flag.db", format: "json"}
	merged := mergeConfig(s, func(string) bool { return false }, fileConfig{})

	assert.Equal(t, s, merged)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tetra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
engine: mysql
dsn: tetra:secret@tcp(localhost:3306)/graphs
format: text
timeouts:
  insert_seconds: 45
`), 0o600))

	file, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mysql", file.Engine)
	assert.Equal(t, "tetra:secret@tcp(localhost:3306)/graphs", file.DSN)
	assert.Equal(t, "text", file.Format)
	assert.Equal(t, 45, file.Timeouts.InsertSeconds)
	assert.Zero(t, file.Timeouts.SelectSeconds)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := loadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfigFile_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: [unclosed"), 0o600))

	_, err := loadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestResourceFlag(t *testing.T) {
	t.Parallel()

	r, err := resourceFlag("http://example.org/alice", "subject")
	require.NoError(t, err)
	assert.Equal(t, "<http://example.org/alice>", r.String())

	r, err = resourceFlag("<http://example.org/alice>", "subject")
	require.NoError(t, err)
	assert.Equal(t, "<http://example.org/alice>", r.String())

	r, err = resourceFlag("_:b1", "subject")
	require.NoError(t, err)
	assert.True(t, r.IsBlank())

	r, err = resourceFlag("", "subject")
	require.NoError(t, err)
	assert.Nil(t, r)

	_, err = resourceFlag(`"Alice"`, "object")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid object")
}

func TestLiteralFlag(t *testing.T) {
	t.Parallel()

	l, err := literalFlag("chaise", "", "")
	require.NoError(t, err)
	assert.Equal(t, `"chaise"`, l.String())

	l, err = literalFlag(`"chaise"@fr`, "", "")
	require.NoError(t, err)
	assert.Equal(t, "fr", l.Lang())

	l, err = literalFlag("chaise", "fr", "")
	require.NoError(t, err)
	assert.Equal(t, `"chaise"@fr`, l.String())

	l, err = literalFlag("42", "", "http://www.w3.org/2001/XMLSchema#integer")
	require.NoError(t, err)
	assert.Equal(t, "42", l.Value())

	l, err = literalFlag("", "", "")
	require.NoError(t, err)
	assert.Nil(t, l)

	_, err = literalFlag(`"unterminated`, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid literal")

	_, err = literalFlag("chaise", "fr", "http://www.w3.org/2001/XMLSchema#string")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")

	_, err = literalFlag("", "fr", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "require --literal")
}

func TestPatternFlags(t *testing.T) {
	t.Parallel()

	p, err := patternFlags{}.pattern()
	require.NoError(t, err)
	m, err := p.Mask()
	require.NoError(t, err)
	assert.Zero(t, m)

	p, err = patternFlags{
		context: "http://example.org/g",
		subject: "http://example.org/alice",
	}.pattern()
	require.NoError(t, err)
	m, err = p.Mask()
	require.NoError(t, err)
	assert.Equal(t, "CS", m.Signature())

	_, err = patternFlags{
		object:  "http://example.org/bob",
		literal: "chaise",
	}.pattern()
	require.Error(t, err)
}

func TestGroupByContext(t *testing.T) {
	t.Parallel()

	g1 := rdf.MustResource("http://example.org/graphs/1")
	g2 := rdf.MustResource("http://example.org/graphs/2")
	subj := rdf.MustResource("http://example.org/alice")
	pred := rdf.MustResource("http://example.org/knows")

	quad := func(c rdf.Resource, obj string) *rdf.Quad {
		q, err := rdf.NewQuad(c, subj, pred, rdf.MustResource(obj))
		require.NoError(t, err)
		return q
	}

	// Interleaved contexts collapse into two graphs in first-seen order.
	graphs, err := groupByContext([]*rdf.Quad{
		quad(g1, "http://example.org/bob"),
		quad(g2, "http://example.org/carol"),
		quad(g1, "http://example.org/dan"),
	})
	require.NoError(t, err)

	require.Len(t, graphs, 2)
	assert.True(t, graphs[0].Context().Equal(g1))
	assert.Equal(t, 2, graphs[0].Len())
	assert.True(t, graphs[1].Context().Equal(g2))
	assert.Equal(t, 1, graphs[1].Len())
}

func TestQuadToCLI(t *testing.T) {
	t.Parallel()

	q, err := rdf.NewQuad(
		rdf.MustResource("http://example.org/g"),
		rdf.MustResource("http://example.org/alice"),
		rdf.MustResource("http://example.org/name"),
		rdf.NewLiteral("Alice"),
	)
	require.NoError(t, err)

	c := quadToCLI(q)
	assert.Equal(t, q.ID(), c.ID)
	assert.Equal(t, "<http://example.org/g>", c.Context)
	assert.Equal(t, "<http://example.org/alice>", c.Subject)
	assert.Equal(t, "<http://example.org/name>", c.Predicate)
	assert.Equal(t, `"Alice"`, c.Object)
	assert.Equal(t, "literal", c.Flavor)
}

package main

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatQuadsText_Golden(t *testing.T) {
	t.Parallel()

	quads := []CLIQuad{
		{
			ID:        1,
			Context:   "<http://example.org/g>",
			Subject:   "<http://example.org/alice>",
			Predicate: "<http://example.org/name>",
			Object:    `"Alice"`,
			Flavor:    "literal",
		},
		{
			ID:        2,
			Context:   "<http://example.org/g>",
			Subject:   "<http://example.org/alice>",
			Predicate: "<http://example.org/knows>",
			Object:    "<http://example.org/bob>",
			Flavor:    "resource",
		},
	}

	var buf bytes.Buffer
	formatQuadsText(&buf, quads)

	g := goldie.New(t)
	g.Assert(t, "quads_table", buf.Bytes())
}

func TestOutputResultText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		results any
		want    string
	}{
		{"status", CLIStatus{Engine: "sqlite", Quadruples: 7}, "engine: sqlite\nquadruples: 7\n"},
		{"load", CLILoadReport{File: "g.nq", Quadruples: 5, Contexts: 2}, "loaded 5 quadruples from g.nq (2 contexts)\n"},
		{"remove", CLIRemoveReport{Removed: 3}, "removed 3 quadruples\n"},
		{"count", CLICount{Count: 42}, "42\n"},
		{"empty", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := outputResultText(&buf, CLIResult{Command: tc.name, Results: tc.results})
			require.NoError(t, err)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestOutputResultText_UnsupportedType(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := outputResultText(&buf, CLIResult{Command: "query", Results: 12})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported result type")
}

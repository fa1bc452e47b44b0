package main

import "github.com/jward/tetra/rdf"

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command    string `json:"command"`
	Results    any    `json:"results"`
	TotalCount *int   `json:"total_count,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CLIQuad is a JSON-friendly quadruple: the canonical term strings plus the
// content-derived identifier.
type CLIQuad struct {
	ID        int64  `json:"id"`
	Context   string `json:"context"`
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
	Flavor    string `json:"flavor"`
}

// CLIStatus reports the data source after init or optimize.
type CLIStatus struct {
	Engine     string `json:"engine"`
	Quadruples int64  `json:"quadruples"`
}

// CLILoadReport summarizes a load run.
type CLILoadReport struct {
	File       string `json:"file"`
	Quadruples int    `json:"quadruples"`
	Contexts   int    `json:"contexts"`
}

// CLIRemoveReport counts the rows a remove or clear deleted.
type CLIRemoveReport struct {
	Removed int64 `json:"removed"`
}

// CLICount is a bare count result.
type CLICount struct {
	Count int64 `json:"count"`
}

func quadToCLI(q *rdf.Quad) CLIQuad {
	return CLIQuad{
		ID:        q.ID(),
		Context:   q.Context().String(),
		Subject:   q.Subject().String(),
		Predicate: q.Predicate().String(),
		Object:    q.Object().String(),
		Flavor:    q.Flavor().String(),
	}
}

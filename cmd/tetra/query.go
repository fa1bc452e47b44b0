package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jward/tetra"
	"github.com/jward/tetra/rdf"
)

// patternFlags collects the accessor flag values shared by query and remove.
// Only one command runs per invocation, so a single instance suffices.
type patternFlags struct {
	context   string
	subject   string
	predicate string
	object    string
	literal   string
	lang      string
	datatype  string
}

var patFlags patternFlags

// addPatternFlags registers the accessor flags on a command.
func addPatternFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&patFlags.context, "context", "", "context IRI or _:label")
	cmd.Flags().StringVar(&patFlags.subject, "subject", "", "subject IRI or _:label")
	cmd.Flags().StringVar(&patFlags.predicate, "predicate", "", "predicate IRI")
	cmd.Flags().StringVar(&patFlags.object, "object", "", "object IRI or _:label (matches resource objects only)")
	cmd.Flags().StringVar(&patFlags.literal, "literal", "", `literal text, or a quoted N-Quads literal like "chaise"@fr`)
	cmd.Flags().StringVar(&patFlags.lang, "lang", "", "language tag for --literal")
	cmd.Flags().StringVar(&patFlags.datatype, "datatype", "", "datatype IRI for --literal")
}

// pattern assembles a Pattern from the flag values.
func (f patternFlags) pattern() (tetra.Pattern, error) {
	var pat tetra.Pattern
	var err error
	if pat.Context, err = resourceFlag(f.context, "context"); err != nil {
		return pat, err
	}
	if pat.Subject, err = resourceFlag(f.subject, "subject"); err != nil {
		return pat, err
	}
	if pat.Predicate, err = resourceFlag(f.predicate, "predicate"); err != nil {
		return pat, err
	}
	if pat.Object, err = resourceFlag(f.object, "object"); err != nil {
		return pat, err
	}
	if pat.Literal, err = literalFlag(f.literal, f.lang, f.datatype); err != nil {
		return pat, err
	}
	if _, err := pat.Mask(); err != nil {
		return pat, err
	}
	return pat, nil
}

// resourceFlag parses an accessor flag as an IRI or a blank-node label.
// Angle brackets around the IRI are accepted but not required.
func resourceFlag(value, name string) (*rdf.Resource, error) {
	if value == "" {
		return nil, nil
	}
	if strings.HasPrefix(value, "_:") || strings.HasPrefix(value, "<") {
		term, err := rdf.ParseTerm(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		r, ok := term.(rdf.Resource)
		if !ok {
			return nil, fmt.Errorf("invalid %s: %q is not a resource", name, value)
		}
		return &r, nil
	}
	r, err := rdf.NewResource(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &r, nil
}

// literalFlag builds the literal accessor. --lang and --datatype tag the raw
// --literal text; without them a value starting with '"' is parsed as quoted
// N-Quads syntax and anything else as a plain literal.
func literalFlag(value, lang, datatype string) (*rdf.Literal, error) {
	if value == "" {
		if lang != "" || datatype != "" {
			return nil, errors.New("--lang and --datatype require --literal")
		}
		return nil, nil
	}
	if lang != "" && datatype != "" {
		return nil, errors.New("--lang and --datatype are mutually exclusive")
	}

	switch {
	case lang != "":
		l, err := rdf.NewLangLiteral(value, lang)
		if err != nil {
			return nil, fmt.Errorf("invalid literal: %w", err)
		}
		return &l, nil
	case datatype != "":
		l, err := rdf.NewTypedLiteral(value, datatype)
		if err != nil {
			return nil, fmt.Errorf("invalid literal: %w", err)
		}
		return &l, nil
	case strings.HasPrefix(value, `"`):
		term, err := rdf.ParseTerm(value)
		if err != nil {
			return nil, fmt.Errorf("invalid literal: %w", err)
		}
		l, ok := term.(rdf.Literal)
		if !ok {
			return nil, fmt.Errorf("invalid literal: %q is not a literal", value)
		}
		return &l, nil
	default:
		l := rdf.NewLiteral(value)
		return &l, nil
	}
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Select quadruples by pattern",
	Long:  "Binds any subset of the five accessors and returns the matching quadruples. No accessors means a full scan.",
	Args:  cobra.NoArgs,
	RunE:  runQuery,
}

func init() {
	addPatternFlags(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	p, err := patFlags.pattern()
	if err != nil {
		return outputError("query", err)
	}

	s, err := openStore()
	if err != nil {
		return outputError("query", err)
	}
	defer s.Close()

	quads, err := s.Select(cmd.Context(), p)
	if err != nil {
		return outputError("query", err)
	}

	results := make([]CLIQuad, len(quads))
	for i, q := range quads {
		results[i] = quadToCLI(q)
	}
	total := len(results)
	return outputResult(CLIResult{
		Command:    "query",
		Results:    results,
		TotalCount: &total,
	})
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count persisted quadruples",
	Args:  cobra.NoArgs,
	RunE:  runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return outputError("count", err)
	}
	defer s.Close()

	n, err := s.Count(cmd.Context())
	if err != nil {
		return outputError("count", err)
	}
	return outputResult(CLIResult{Command: "count", Results: CLICount{Count: n}})
}

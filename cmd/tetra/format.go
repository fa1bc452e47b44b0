package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// formatQuadsText renders quadruples as aligned columns of canonical terms.
func formatQuadsText(w io.Writer, quads []CLIQuad) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBJECT\tPREDICATE\tOBJECT\tCONTEXT\tFLAVOR")
	for _, q := range quads {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			q.Subject, q.Predicate, q.Object, q.Context, q.Flavor)
	}
	tw.Flush()
}

// outputResultText renders a result envelope as human-readable text.
func outputResultText(w io.Writer, result CLIResult) error {
	switch v := result.Results.(type) {
	case []CLIQuad:
		formatQuadsText(w, v)
	case CLIStatus:
		fmt.Fprintf(w, "engine: %s\nquadruples: %d\n", v.Engine, v.Quadruples)
	case CLILoadReport:
		fmt.Fprintf(w, "loaded %d quadruples from %s (%d contexts)\n", v.Quadruples, v.File, v.Contexts)
	case CLIRemoveReport:
		fmt.Fprintf(w, "removed %d quadruples\n", v.Removed)
	case CLICount:
		fmt.Fprintf(w, "%d\n", v.Count)
	case nil:
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(result CLIResult) error {
	if cfg.format == "text" {
		return outputResultText(os.Stdout, result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError reports an error in the selected format and returns it so RunE
// propagates the failing exit code. JSON errors go to stdout as an envelope,
// text errors to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if cfg.format == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete quadruples by pattern",
	Long:  "Deletes every quadruple matching all bound accessors. Refuses to run with none bound; use 'tetra clear --force' to empty the store.",
	Args:  cobra.NoArgs,
	RunE:  runRemove,
}

func init() {
	addPatternFlags(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	p, err := patFlags.pattern()
	if err != nil {
		return outputError("remove", err)
	}
	m, err := p.Mask()
	if err != nil {
		return outputError("remove", err)
	}
	if m == 0 {
		return outputError("remove", errors.New("no accessors bound; use 'tetra clear --force' to remove everything"))
	}

	s, err := openStore()
	if err != nil {
		return outputError("remove", err)
	}
	defer s.Close()

	before, err := s.Count(cmd.Context())
	if err != nil {
		return outputError("remove", err)
	}
	if err := s.RemoveMatching(cmd.Context(), p); err != nil {
		return outputError("remove", err)
	}
	after, err := s.Count(cmd.Context())
	if err != nil {
		return outputError("remove", err)
	}
	return outputResult(CLIResult{
		Command: "remove",
		Results: CLIRemoveReport{Removed: before - after},
	})
}

var flagForce bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every quadruple",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&flagForce, "force", false, "actually delete everything")
}

func runClear(cmd *cobra.Command, args []string) error {
	if !flagForce {
		return outputError("clear", errors.New("refusing to clear without --force"))
	}

	s, err := openStore()
	if err != nil {
		return outputError("clear", err)
	}
	defer s.Close()

	before, err := s.Count(cmd.Context())
	if err != nil {
		return outputError("clear", err)
	}
	if err := s.Clear(cmd.Context()); err != nil {
		return outputError("clear", err)
	}
	return outputResult(CLIResult{
		Command: "clear",
		Results: CLIRemoveReport{Removed: before},
	})
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run the engine's maintenance statements",
	Long:  "Rebuilds planner statistics and reclaims space: ANALYZE and VACUUM on sqlite, VACUUM ANALYZE on postgres, OPTIMIZE TABLE on mysql.",
	Args:  cobra.NoArgs,
	RunE:  runOptimize,
}

func runOptimize(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return outputError("optimize", err)
	}
	defer s.Close()

	if err := s.Optimize(cmd.Context()); err != nil {
		return outputError("optimize", err)
	}
	n, err := s.Count(cmd.Context())
	if err != nil {
		return outputError("optimize", err)
	}
	return outputResult(CLIResult{
		Command: "optimize",
		Results: CLIStatus{Engine: s.Engine(), Quadruples: n},
	})
}

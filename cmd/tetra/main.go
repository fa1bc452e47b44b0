package main

import (
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/jward/tetra"
)

// settings are the resolved global options: flag values with config-file
// values layered underneath.
type settings struct {
	engine  string
	dsn     string
	driver  string
	format  string
	verbose bool

	selectTimeout time.Duration
	insertTimeout time.Duration
	deleteTimeout time.Duration
}

var (
	flagEngine  string
	flagDSN     string
	flagDriver  string
	flagConfig  string
	flagFormat  string
	flagVerbose bool

	cfg    settings
	logger = zap.NewNop()
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tetra",
	Short:         "RDF quadruple store over SQLite, PostgreSQL, or MySQL",
	Long:          "Tetra persists RDF quadruples in a relational engine and answers pattern-indexed queries over them. Every command addresses the data source named by --engine and --dsn, or by a --config file.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s := settings{
			engine:  flagEngine,
			dsn:     flagDSN,
			driver:  flagDriver,
			format:  flagFormat,
			verbose: flagVerbose,
		}
		if flagConfig != "" {
			file, err := loadConfigFile(flagConfig)
			if err != nil {
				return err
			}
			s = mergeConfig(s, cmd.Flags().Changed, file)
		}
		if err := validateFormat(s.format); err != nil {
			return err
		}
		cfg = s

		l, err := buildLogger(s.verbose)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	// No Run; bare invocation prints help.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEngine, "engine", "sqlite", "storage engine: sqlite|postgres|mysql")
	rootCmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "data source name (e.g. graph.db or postgres://...)")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "database/sql driver override (e.g. sqlite for the pure-Go driver)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file; explicit flags win over its values")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "json", "output format: json|text")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "debug logging on stderr")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(optimizeCmd)
}

// buildLogger writes structured logs to stderr so stdout stays machine
// readable.
func buildLogger(verbose bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.OutputPaths = []string{"stderr"}
	c.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return c.Build()
}

// openStore connects using the resolved settings.
func openStore() (*tetra.Store, error) {
	if cfg.dsn == "" {
		return nil, fmt.Errorf("no data source: set --dsn or the dsn key in a --config file")
	}
	dsn := cfg.dsn
	if cfg.engine == "sqlite" && cfg.driver == "" {
		dsn = sqliteDSN(dsn)
	}

	opts := []tetra.Option{tetra.WithLogger(logger)}
	if cfg.driver != "" {
		opts = append(opts, tetra.WithDriverName(cfg.driver))
	}
	if cfg.selectTimeout > 0 {
		opts = append(opts, tetra.WithSelectTimeout(cfg.selectTimeout))
	}
	if cfg.insertTimeout > 0 {
		opts = append(opts, tetra.WithInsertTimeout(cfg.insertTimeout))
	}
	if cfg.deleteTimeout > 0 {
		opts = append(opts, tetra.WithDeleteTimeout(cfg.deleteTimeout))
	}
	return tetra.Open(cfg.engine, dsn, opts...)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the quadruples table and covering indexes if missing",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return outputError("init", err)
	}
	defer s.Close()

	n, err := s.Count(cmd.Context())
	if err != nil {
		return outputError("init", err)
	}
	return outputResult(CLIResult{
		Command: "init",
		Results: CLIStatus{Engine: s.Engine(), Quadruples: n},
	})
}

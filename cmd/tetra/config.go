package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML config file:
//
//	engine: postgres
//	dsn: postgres://tetra@localhost/graphs?sslmode=disable
//	format: text
//	timeouts:
//	  select_seconds: 30
//	  insert_seconds: 60
//	  delete_seconds: 60
type fileConfig struct {
	Engine   string `yaml:"engine"`
	DSN      string `yaml:"dsn"`
	Driver   string `yaml:"driver"`
	Format   string `yaml:"format"`
	Timeouts struct {
		SelectSeconds int `yaml:"select_seconds"`
		InsertSeconds int `yaml:"insert_seconds"`
		DeleteSeconds int `yaml:"delete_seconds"`
	} `yaml:"timeouts"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var file fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

// mergeConfig layers file values under flags: an explicitly set flag always
// wins. Timeouts have no flags and come from the file alone.
func mergeConfig(s settings, changed func(string) bool, file fileConfig) settings {
	if !changed("engine") && file.Engine != "" {
		s.engine = file.Engine
	}
	if !changed("dsn") && file.DSN != "" {
		s.dsn = file.DSN
	}
	if !changed("driver") && file.Driver != "" {
		s.driver = file.Driver
	}
	if !changed("format") && file.Format != "" {
		s.format = file.Format
	}
	if file.Timeouts.SelectSeconds > 0 {
		s.selectTimeout = time.Duration(file.Timeouts.SelectSeconds) * time.Second
	}
	if file.Timeouts.InsertSeconds > 0 {
		s.insertTimeout = time.Duration(file.Timeouts.InsertSeconds) * time.Second
	}
	if file.Timeouts.DeleteSeconds > 0 {
		s.deleteTimeout = time.Duration(file.Timeouts.DeleteSeconds) * time.Second
	}
	return s
}

// sqliteDSNParams are the cgo driver's pragmas for safe concurrent use of a
// plain database path.
const sqliteDSNParams = "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000"

// sqliteDSN appends the default pragmas to bare sqlite paths, leaving
// memory databases, file: URIs, and explicit parameter lists alone.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "?") || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return dsn
	}
	return dsn + sqliteDSNParams
}

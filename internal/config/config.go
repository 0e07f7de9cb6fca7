// Package config loads locsheet settings from defaults, a config file,
// LOCSHEET_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	locsheet "github.com/KimNorgaard/go-locsheet"
	"github.com/KimNorgaard/go-locsheet/internal/parser"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "LOCSHEET_"

// Default values.
const (
	DefaultAddr           = ":8080"
	DefaultMaxUploadBytes = 10 << 20
	DefaultFormat         = "xlsx"
	DefaultIndent         = 2
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// configNames are looked up in the working directory when no file is given.
var configNames = []string{"locsheet.yaml", "locsheet.yml", "locsheet.toml"}

// Config holds every setting of the command and the HTTP service.
type Config struct {
	Addr           string `koanf:"addr"`
	MaxUploadBytes int64  `koanf:"max_upload_bytes"`
	Format         string `koanf:"format"`
	SheetName      string `koanf:"sheet_name"`
	Indent         int    `koanf:"indent"`
	MaxDepth       int    `koanf:"max_depth"`
	StrictPaths    bool   `koanf:"strict_paths"`
	LooseValues    bool   `koanf:"loose_values"`
	LogLevel       string `koanf:"log_level"`
	LogFormat      string `koanf:"log_format"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

func defaults() map[string]any {
	return map[string]any{
		"addr":             DefaultAddr,
		"max_upload_bytes": DefaultMaxUploadBytes,
		"format":           DefaultFormat,
		"sheet_name":       locsheet.DefaultSheetName,
		"indent":           DefaultIndent,
		"max_depth":        parser.DefaultMaxDepth,
		"strict_paths":     false,
		"loose_values":     false,
		"log_level":        DefaultLogLevel,
		"log_format":       DefaultLogFormat,
	}
}

// Load builds a Config. cfgFile may be empty, in which case the first of
// locsheet.yaml, locsheet.yml or locsheet.toml in the working directory is
// used when present. Only flags the user actually set override lower layers.
// A .env file in the working directory is loaded into the environment first.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// .env is optional; variables may come from the real environment.
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), parserFor(used)); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", used, err)
		}
	}

	// LOCSHEET_SHEET_NAME -> sheet_name
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return TOML()
	}
	return yaml.Parser()
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("config: addr is required")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config: max_upload_bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if _, err := locsheet.ParseTableFormat(c.Format); err != nil {
		return fmt.Errorf("config: format: %w", err)
	}
	if strings.TrimSpace(c.SheetName) == "" {
		return fmt.Errorf("config: sheet_name is required")
	}
	if c.Indent < 0 {
		return fmt.Errorf("config: indent must not be negative, got %d", c.Indent)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("config: max_depth must be positive, got %d", c.MaxDepth)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// ConverterOptions translates the conversion settings into locsheet options.
func (c *Config) ConverterOptions(logger *slog.Logger) []locsheet.Option {
	format, _ := locsheet.ParseTableFormat(c.Format)
	opts := []locsheet.Option{
		locsheet.MaxDepth(c.MaxDepth),
		locsheet.Indent(c.Indent),
		locsheet.WithTableFormat(format),
		locsheet.SheetName(c.SheetName),
	}
	if c.StrictPaths {
		opts = append(opts, locsheet.StrictPaths())
	}
	if c.LooseValues {
		opts = append(opts, locsheet.LooseValues())
	}
	if logger != nil {
		opts = append(opts, locsheet.WithLogger(logger))
	}
	return opts
}

// NewLogger returns a logger writing to w at the configured level and format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	hopts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("config: unknown log_level %q", s)
}

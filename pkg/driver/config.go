package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"lox/interpreter-go/pkg/logging"
	"lox/interpreter-go/pkg/parser"
)

// ConfigFileName is the project configuration file searched for by FindConfig.
const ConfigFileName = "lox.yml"

// ErrConfigNotFound is returned by FindConfig when no lox.yml exists between
// the start directory and the filesystem root.
var ErrConfigNotFound = errors.New("lox.yml not found")

// ColorMode controls diagnostic colouring.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config represents the parsed contents of lox.yml.
type Config struct {
	Path     string
	Entry    string
	Color    ColorMode
	MaxDepth int
	EchoAST  bool
	Log      LogConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// DefaultConfig is used when no lox.yml is present.
func DefaultConfig() *Config {
	return &Config{
		Color:    ColorAuto,
		MaxDepth: parser.DefaultMaxDepth,
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// ValidationError aggregates configuration validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type configFile struct {
	Entry    string         `yaml:"entry"`
	Color    string         `yaml:"color"`
	MaxDepth *int           `yaml:"max_depth"`
	EchoAST  bool           `yaml:"echo_ast"`
	Log      *logConfigFile `yaml:"log"`
}

type logConfigFile struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig parses lox.yml from disk, returning a validated config. Unknown
// keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			cfg := DefaultConfig()
			cfg.Path = absPath
			return cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (raw configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	cfg.Entry = strings.TrimSpace(raw.Entry)
	cfg.EchoAST = raw.EchoAST
	if color := strings.TrimSpace(raw.Color); color != "" {
		cfg.Color = ColorMode(strings.ToLower(color))
	}
	if raw.MaxDepth != nil {
		cfg.MaxDepth = *raw.MaxDepth
	}
	if raw.Log != nil {
		if level := strings.TrimSpace(raw.Log.Level); level != "" {
			cfg.Log.Level = level
		}
		if format := strings.TrimSpace(raw.Log.Format); format != "" {
			cfg.Log.Format = strings.ToLower(format)
		}
	}
	return cfg
}

func (c *Config) validate() error {
	var errs ValidationError
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("color must be one of auto, always, never (got %q)", c.Color))
	}
	if c.MaxDepth < 1 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_depth must be positive (got %d)", c.MaxDepth))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs.Issues = append(errs.Issues, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("log.format must be text or json (got %q)", c.Log.Format))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// Dir returns the directory holding the config file, or "" for defaults.
func (c *Config) Dir() string {
	if c == nil || c.Path == "" {
		return ""
	}
	return filepath.Dir(c.Path)
}

// EntryPath resolves Entry relative to the config file.
func (c *Config) EntryPath() (string, error) {
	if c == nil || c.Entry == "" {
		return "", fmt.Errorf("config: no entry script configured")
	}
	if filepath.IsAbs(c.Entry) || c.Path == "" {
		return c.Entry, nil
	}
	return filepath.Join(c.Dir(), c.Entry), nil
}

// Logging converts the log section into a logger configuration writing to out.
func (c *Config) Logging(out io.Writer) logging.Config {
	cfg := logging.DefaultConfig()
	if out != nil {
		cfg.Output = out
	}
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		cfg.Level = level
	}
	cfg.Format = c.Log.Format
	return cfg
}

// ParserOptions returns the parser options implied by the config.
func (c *Config) ParserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(c.MaxDepth)}
}

// FindConfig walks upward from start looking for lox.yml.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", ConfigFileName, origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

// LoadConfigFrom finds and loads the nearest lox.yml above start. A missing
// file yields DefaultConfig.
func LoadConfigFrom(start string) (*Config, error) {
	path, err := FindConfig(start)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return LoadConfig(path)
}

// Package config loads feedquery settings from YAML files and the
// environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/language"

	"github.com/comunidad/feedquery/internal/logging"
	"github.com/comunidad/feedquery/internal/pagination"
	"github.com/comunidad/feedquery/internal/query"
	"github.com/comunidad/feedquery/internal/record"
)

// Schema versioning.
const (
	CurrentSchemaVersion = "1.0.0"
	SupportedSchema      = "^1"
)

// Environment variables read by Load.
const (
	EnvHome         = "FEEDQUERY_HOME"
	EnvLogLevel     = "FEEDQUERY_LOG_LEVEL"
	EnvLogFormat    = "FEEDQUERY_LOG_FORMAT"
	EnvOutputFormat = "FEEDQUERY_OUTPUT_FORMAT"
	EnvItemsPerPage = "FEEDQUERY_ITEMS_PER_PAGE"
)

// Output formats accepted by the CLI.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Validation errors.
var (
	ErrUnsupportedSchema = errors.New("unsupported config schema version")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrInvalidPagination = errors.New("invalid pagination settings")
	ErrInvalidLocale     = errors.New("invalid locale")
	ErrInvalidLogFormat  = errors.New("invalid log format")
)

// Config is the complete feedquery configuration.
type Config struct {
	SchemaVersion string           `yaml:"schema_version" json:"schema_version"`
	Output        OutputConfig     `yaml:"output"         json:"output"`
	Pagination    PaginationConfig `yaml:"pagination"     json:"pagination"`
	Query         QueryConfig      `yaml:"query"          json:"query"`
	Logging       LoggingConfig    `yaml:"logging"        json:"logging"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// PaginationConfig sets the page size and pager width of list views.
type PaginationConfig struct {
	ItemsPerPage    int `yaml:"items_per_page"    json:"items_per_page"`
	MaxVisiblePages int `yaml:"max_visible_pages" json:"max_visible_pages"`
}

// QueryConfig tunes the list query engine.
type QueryConfig struct {
	Locale        string         `yaml:"locale"         json:"locale"`
	AllCategories string         `yaml:"all_categories" json:"all_categories"`
	DefaultSort   string         `yaml:"default_sort"   json:"default_sort"`
	DateLayouts   []string       `yaml:"date_layouts"   json:"date_layouts,omitempty"`
	Aliases       record.Aliases `yaml:"aliases"        json:"aliases"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Output:        OutputConfig{DefaultFormat: FormatTable},
		Pagination: PaginationConfig{
			ItemsPerPage:    pagination.DefaultItemsPerPage,
			MaxVisiblePages: pagination.DefaultMaxVisiblePages,
		},
		Query: QueryConfig{
			Locale:        "es",
			AllCategories: query.AllCategories,
			DefaultSort:   string(query.SortRecent),
			DateLayouts:   slices.Clone(record.DefaultDateLayouts),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// HomeDir returns the feedquery home directory: $FEEDQUERY_HOME, or
// ~/.feedquery. It returns "" when neither can be determined.
func HomeDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".feedquery")
}

// GlobalPath returns the path of the global config file, or "" when the home
// directory cannot be determined.
func GlobalPath() string {
	home := HomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, "config.yaml")
}

// Save writes c as YAML to path, creating the parent directory.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Load builds the effective configuration: defaults, then the global
// config.yaml under HomeDir, then the explicit file at path (if any), then
// environment overrides. The result is validated.
func Load(ctx context.Context, path string) (*Config, error) {
	log := logging.FromContext(ctx)
	cfg := New()

	if global := GlobalPath(); global != "" {
		if _, err := os.Stat(global); err == nil {
			if mergeErr := ShallowMergeYAML(cfg, global); mergeErr != nil {
				return nil, mergeErr
			}
			log.Debug().Ctx(ctx).
				Str("component", "config").
				Str("operation", "load").
				Str("path", global).
				Msg("merged global config")
		}
	}

	if path != "" {
		if err := ShallowMergeYAML(cfg, path); err != nil {
			return nil, err
		}
		log.Debug().Ctx(ctx).
			Str("component", "config").
			Str("operation", "load").
			Str("path", path).
			Msg("merged config file")
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies environment overrides read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = v
	}
	if v, ok := lookup(EnvItemsPerPage); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidPagination, EnvItemsPerPage, v)
		}
		c.Pagination.ItemsPerPage = n
	}
	return nil
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := validateSchema(c.SchemaVersion); err != nil {
		return err
	}

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		return fmt.Errorf("%w: %q (must be table, json or ndjson)", ErrInvalidFormat, c.Output.DefaultFormat)
	}

	if c.Pagination.ItemsPerPage < pagination.MinItemsPerPage {
		return fmt.Errorf("%w: items_per_page must be >= 1, got %d", ErrInvalidPagination, c.Pagination.ItemsPerPage)
	}
	if c.Pagination.MaxVisiblePages < pagination.MinMaxVisiblePages {
		return fmt.Errorf("%w: max_visible_pages must be >= 1, got %d",
			ErrInvalidPagination, c.Pagination.MaxVisiblePages)
	}

	if _, err := c.Query.Language(); err != nil {
		return err
	}
	if _, err := query.ParseSortBy(c.Query.DefaultSort); err != nil {
		return fmt.Errorf("query.default_sort: %w", err)
	}

	return c.Logging.Validate()
}

func validateSchema(v string) error {
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, v, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, SupportedSchema)
	}
	return nil
}

// Language parses the configured collation locale.
func (q QueryConfig) Language() (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(q.Locale))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, q.Locale, err)
	}
	return tag, nil
}

// SortBy returns the configured default sort key.
func (q QueryConfig) SortBy() query.SortBy {
	key, err := query.ParseSortBy(q.DefaultSort)
	if err != nil {
		return query.SortRecent
	}
	return key
}

// Engine builds a query engine from the query section.
func (q QueryConfig) Engine() (*query.Engine, error) {
	tag, err := q.Language()
	if err != nil {
		return nil, err
	}
	return query.New(
		query.WithAliases(q.Aliases),
		query.WithLocale(tag),
		query.WithAllCategories(q.AllCategories),
		query.WithDateLayouts(q.DateLayouts),
	), nil
}

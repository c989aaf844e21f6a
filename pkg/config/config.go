// Package config defines core configuration types for swiftfmt.
// These types are pure data structures; discovery and merging live in the
// configloader package.
package config

// Severity controls how lint-mode changes are reported.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IsValid returns true if the severity is known.
func (s Severity) IsValid() bool {
	return s == SeverityError || s == SeverityWarning
}

// OutputFormat specifies the output format for reports.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatDiff  OutputFormat = "diff"
	FormatSARIF OutputFormat = "sarif"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatDiff, FormatSARIF:
		return true
	default:
		return false
	}
}

// RulesConfig selects rules beyond their defaults.
type RulesConfig struct {
	// Enable lists opt-in rules to run.
	Enable []string `yaml:"enable,omitempty" toml:"enable,omitempty"`

	// Disable lists rules that must not run. Disable wins over Enable.
	Disable []string `yaml:"disable,omitempty" toml:"disable,omitempty"`
}

// Config is the root configuration structure for swiftfmt.
type Config struct {
	// Rules selects which rules run.
	Rules RulesConfig `yaml:"rules" toml:"rules"`

	// Options holds formatting option values keyed by option name
	// (for example "indent" or "maxwidth"). Values are validated against
	// the option table when the configuration is resolved.
	Options map[string]any `yaml:"options,omitempty" toml:"options,omitempty"`

	// Exclude contains glob patterns for files to skip.
	Exclude []string `yaml:"exclude,omitempty" toml:"exclude,omitempty"`

	// Severity is the report level for changes found in lint mode.
	Severity Severity `yaml:"severity,omitempty" toml:"severity,omitempty"`

	// CLI-level options (not persisted to config files).

	// Lint reports changes instead of applying them.
	Lint bool `yaml:"-" toml:"-"`

	// DryRun shows what would change without writing files.
	DryRun bool `yaml:"-" toml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// Jobs is the number of files processed concurrently.
	Jobs int `yaml:"-" toml:"-"`

	// Backup keeps a copy of each file before it is rewritten.
	Backup bool `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Options:  make(map[string]any),
		Severity: SeverityError,
		Format:   FormatText,
		Jobs:     0, // 0 means use GOMAXPROCS
	}
}

// FormatOptions resolves the configured option values against the option
// table, starting from DefaultFormatOptions.
func (c *Config) FormatOptions() (FormatOptions, error) {
	opts := DefaultFormatOptions()
	if c == nil || len(c.Options) == 0 {
		return opts, nil
	}
	return ApplyValues(opts, c.Options)
}

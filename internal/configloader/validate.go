package configloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/swiftfmt/pkg/config"
	"github.com/yaklabco/swiftfmt/pkg/lint"
	"github.com/yaklabco/swiftfmt/pkg/runner"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "options.indent").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., deprecated rule names).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration against the given rule registry.
// A nil registry means lint.DefaultRegistry.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	if cfg.Severity != "" && !cfg.Severity.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "severity",
			Value:   cfg.Severity,
			Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning", cfg.Severity),
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, diff, sarif", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validateRuleList(registry, "rules.enable", cfg.Rules.Enable, result)
	validateRuleList(registry, "rules.disable", cfg.Rules.Disable, result)
	validateOptions(cfg, result)
	validateExclude(cfg, result)

	return result
}

func validateRuleList(registry *lint.Registry, field string, names []string, result *ValidationResult) {
	for _, name := range names {
		deprecated, err := lint.ValidateRuleNames(registry, []string{name})
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Value:   name,
				Message: err.Error(),
			})
			continue
		}
		for _, msg := range deprecated {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   field,
				Value:   name,
				Message: "deprecated rule name " + msg,
			})
		}
	}
}

// validateOptions applies every option value to the defaults so that bad
// names and values are reported before any file is formatted.
func validateOptions(cfg *config.Config, result *ValidationResult) {
	if _, err := cfg.FormatOptions(); err != nil {
		field := "options"
		var optErr *config.OptionError
		if errors.As(err, &optErr) && optErr.Option != "" {
			field += "." + optErr.Option
		}
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Message: err.Error(),
		})
	}
}

func validateExclude(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Exclude {
		if _, err := runner.CompileGlobs([]string{pattern}); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("exclude[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, registry *lint.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

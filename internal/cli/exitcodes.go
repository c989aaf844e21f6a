package cli

import (
	"errors"

	"github.com/yaklabco/swiftfmt/internal/configloader"
	"github.com/yaklabco/swiftfmt/pkg/config"
	"github.com/yaklabco/swiftfmt/pkg/runner"
)

// Exit codes for swiftfmt.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitChangesRequired indicates lint found files that need formatting.
	ExitChangesRequired = 1

	// ExitFileErrors indicates some files could not be read, written, or
	// contained invalid directives.
	ExitFileErrors = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

var (
	// ErrChangesRequired is returned by lint when files need formatting.
	ErrChangesRequired = errors.New("files require formatting")

	// ErrFilesFailed is returned when some files could not be processed.
	ErrFilesFailed = errors.New("some files could not be processed")

	// ErrInvalidUsage wraps bad flag values and argument combinations.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig wraps configuration loading failures.
	ErrConfig = errors.New("failed to load configuration")
)

// ExitCodeFromResult determines the exit code for a completed run.
// Lint mode fails on pending changes only at error severity.
func ExitCodeFromResult(result *runner.Result, cfg *config.Config) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasErrors() {
		return ExitFileErrors
	}
	if cfg != nil && cfg.Lint && cfg.Severity != config.SeverityWarning && result.HasChanges() {
		return ExitChangesRequired
	}
	return ExitSuccess
}

// errorFromExitCode maps a non-zero run exit code to its sentinel error.
func errorFromExitCode(code int) error {
	switch code {
	case ExitSuccess:
		return nil
	case ExitChangesRequired:
		return ErrChangesRequired
	default:
		return ErrFilesFailed
	}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrChangesRequired):
		return ExitChangesRequired
	case errors.Is(err, ErrFilesFailed):
		return ExitFileErrors
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}

// IsSilent reports whether err only signals an exit code and has already
// been explained by the report.
func IsSilent(err error) bool {
	return errors.Is(err, ErrChangesRequired) || errors.Is(err, ErrFilesFailed)
}

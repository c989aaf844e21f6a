package formatter

import "fmt"

// Change records one effective mutation of the buffer.
type Change struct {
	// Line is the original line of the mutated position.
	Line int

	// Rule is the rule that was running when the change was made.
	Rule string

	// FilePath is the file the change applies to, if known.
	FilePath string

	// IsMove marks changes that relocate existing content.
	IsMove bool
}

// ErrorKind classifies an Error.
type ErrorKind int

const (
	// ParsingError is malformed or unknown directive syntax.
	ParsingError ErrorKind = iota

	// OptionsError is a directive option that failed validation.
	OptionsError
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case ParsingError:
		return "parsing"
	case OptionsError:
		return "options"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a non-fatal problem found while formatting. Errors are collected
// rather than returned; the rule that hit one stops mutating the file.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e Error) Error() string { return e.Message }

// trackMode selects how a primitive mutation is recorded.
type trackMode int

const (
	trackEdit trackMode = iota
	trackMove
	trackNone
)

func (f *Formatter) recordChange(index int, mode trackMode) {
	if !f.trackChanges || mode == trackNone {
		return
	}
	f.changes = append(f.changes, Change{
		Line:     f.OriginalLine(index),
		Rule:     f.rule,
		FilePath: f.filePath,
		IsMove:   mode == trackMove,
	})
}

// recordError logs err once per file and disables the current rule for the
// rest of the file.
func (f *Formatter) recordError(kind ErrorKind, message string) {
	f.ruleDisabled = true
	if _, seen := f.errorSeen[message]; seen {
		return
	}
	f.errorSeen[message] = struct{}{}
	f.errors = append(f.errors, Error{Kind: kind, Message: message})
	f.logger.Debug("directive error", "rule", f.rule, "kind", kind, "error", message)
}

// Package lint provides the rule interface, the rule registry and the engine
// that drives a formatter through every enabled rule.
package lint

import "github.com/yaklabco/swiftfmt/pkg/formatter"

// Rule defines the interface that all formatting rules must implement.
type Rule interface {
	// Name returns the rule name used in directives, config files and
	// reports (e.g., "trailingSpace").
	Name() string

	// Help returns a one-line description of what the rule changes.
	Help() string

	// DefaultEnabled returns whether the rule runs without being enabled
	// explicitly.
	DefaultEnabled() bool

	// Apply rewrites the formatter's tokens.
	//
	// Rules must:
	//   - Traverse with ForEach and its variants so directives are honoured.
	//   - Mutate only through the formatter's mutation API.
	//   - Read options from f.Options() at the point of use, since
	//     directives can change them part way through a file.
	Apply(f *formatter.Formatter)
}

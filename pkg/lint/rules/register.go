package rules

import "github.com/yaklabco/swiftfmt/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Spacing rules
	registry.Register(NewSpaceInsideBracketsRule())
	registry.Register(NewSpaceInsideParensRule())
	registry.Register(NewConsecutiveSpacesRule())

	// Whitespace rules
	registry.Register(NewTrailingSpaceRule())
	registry.Register(NewConsecutiveBlankLinesRule())
	registry.Register(NewLinebreakAtEndOfFileRule())
	registry.Register(NewSemicolonsRule())

	// Organization rules
	registry.Register(NewSortImportsRule())
	registry.Register(NewTrailingCommasRule())
}

// RegisterDeprecatedAliases registers former rule names so existing
// configuration files and directives keep working.
func RegisterDeprecatedAliases(registry *lint.Registry) {
	registry.RegisterAlias("sortedImports", "sortImports")
	registry.RegisterAlias("linebreakAtEnd", "linebreakAtEndOfFile")
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterDeprecatedAliases(lint.DefaultRegistry)
}

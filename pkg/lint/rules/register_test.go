package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/swiftfmt/pkg/lint"
)

func TestRegisterAll(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)

	assert.Equal(t, []string{
		"consecutiveBlankLines",
		"consecutiveSpaces",
		"linebreakAtEndOfFile",
		"semicolons",
		"sortImports",
		"spaceInsideBrackets",
		"spaceInsideParens",
		"trailingCommas",
		"trailingSpace",
	}, registry.Names())

	for _, rule := range registry.Rules() {
		assert.NotEmpty(t, rule.Help(), "rule %s has no help text", rule.Name())
		assert.True(t, rule.DefaultEnabled(), "rule %s", rule.Name())
	}
}

func TestRegisterDeprecatedAliases(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)
	RegisterDeprecatedAliases(registry)

	tests := []struct {
		alias string
		want  string
	}{
		{"sortedImports", "sortImports"},
		{"linebreakAtEnd", "linebreakAtEndOfFile"},
	}

	for _, tt := range tests {
		rule, deprecated, ok := registry.Resolve(tt.alias)
		require.True(t, ok, "alias %s", tt.alias)
		assert.True(t, deprecated)
		assert.Equal(t, tt.want, rule.Name())
	}
}

func TestDefaultRegistryPopulated(t *testing.T) {
	_, ok := lint.DefaultRegistry.Get("trailingSpace")
	assert.True(t, ok)
}

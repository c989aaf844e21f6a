package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/swiftfmt/pkg/config"
)

func TestRegistry_Get(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewRule("trailingSpace", "Remove trailing space.", nil))

	got, ok := reg.Get("trailingspace")
	assert.True(t, ok)
	assert.Equal(t, "trailingSpace", got.Name())

	_, ok = reg.Get("nonexistent")
	assert.False(t, ok)
}

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewRule("spaceInsideBrackets", "", nil))
	reg.RegisterAlias("bracketSpacing", "spaceInsideBrackets")

	tests := []struct {
		key            string
		wantDeprecated bool
		wantOK         bool
	}{
		{"spaceInsideBrackets", false, true},
		{"SPACEINSIDEBRACKETS", false, true},
		{"bracketSpacing", true, true},
		{"nonexistent", false, false},
	}

	for _, tt := range tests {
		rule, deprecated, ok := reg.Resolve(tt.key)
		assert.Equal(t, tt.wantOK, ok, "key: %s", tt.key)
		assert.Equal(t, tt.wantDeprecated, deprecated, "key: %s", tt.key)
		if tt.wantOK {
			assert.Equal(t, "spaceInsideBrackets", rule.Name(), "key: %s", tt.key)
		}
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewRule("demo", "first", nil))
	reg.Register(NewRule("Demo", "second", nil))

	rules := reg.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, "second", rules[0].Help())
}

func TestRegistry_RulesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewRule("trailingSpace", "", nil))
	reg.Register(NewRule("consecutiveSpaces", "", nil))
	reg.Register(NewRule("Indent", "", nil))

	assert.Equal(t, []string{"consecutiveSpaces", "Indent", "trailingSpace"}, reg.Names())
}

func TestRegistry_RuleInfos(t *testing.T) {
	reg := NewRegistry()
	optIn := NewOptInRule("sortImports", "Sort imports.")
	reg.Register(&optIn)
	reg.Register(NewRule("trailingSpace", "Remove trailing space.", nil))

	assert.Equal(t, []config.RuleInfo{
		{Name: "sortImports", Help: "Sort imports.", DefaultEnabled: false},
		{Name: "trailingSpace", Help: "Remove trailing space.", DefaultEnabled: true},
	}, reg.RuleInfos())
}

func TestDefaultRuleInfoProviderIsWired(t *testing.T) {
	require.NotNil(t, config.DefaultRuleInfoProvider)
}

package lint_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/yaklabco/swiftfmt/pkg/config"
	"github.com/yaklabco/swiftfmt/pkg/lint"
)

// testRule is a simple rule implementation for testing.
type testRule struct {
	lint.BaseRule
}

func newTestRule(name string, defaultEnabled bool) *testRule {
	if defaultEnabled {
		return &testRule{BaseRule: lint.NewBaseRule(name, name+" help")}
	}
	return &testRule{BaseRule: lint.NewOptInRule(name, name+" help")}
}

func names(rules []lint.Rule) []string {
	result := make([]string, len(rules))
	for idx, rule := range rules {
		result[idx] = rule.Name()
	}
	return result
}

func TestResolveRules(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule("alpha", true))
	registry.Register(newTestRule("beta", true))
	registry.Register(newTestRule("gamma", false))
	registry.RegisterAlias("oldBeta", "beta")

	tests := []struct {
		name    string
		enable  []string
		disable []string
		want    []string
	}{
		{name: "defaults", want: []string{"alpha", "beta"}},
		{name: "enable opt-in", enable: []string{"gamma"}, want: []string{"alpha", "beta", "gamma"}},
		{name: "disable default", disable: []string{"alpha"}, want: []string{"beta"}},
		{name: "disable wins", enable: []string{"gamma"}, disable: []string{"gamma"}, want: []string{"alpha", "beta"}},
		{name: "case insensitive", disable: []string{"ALPHA"}, want: []string{"beta"}},
		{name: "alias", disable: []string{"oldBeta"}, want: []string{"alpha"}},
		{name: "unknown names ignored", enable: []string{"nope"}, want: []string{"alpha", "beta"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			cfg.Rules.Enable = testCase.enable
			cfg.Rules.Disable = testCase.disable

			got := names(lint.ResolveRules(registry, cfg))
			if !slices.Equal(got, testCase.want) {
				t.Errorf("ResolveRules() = %v, want %v", got, testCase.want)
			}
		})
	}
}

func TestResolveRules_NilConfig(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule("alpha", true))
	registry.Register(newTestRule("gamma", false))

	if got := names(lint.ResolveRules(registry, nil)); !slices.Equal(got, []string{"alpha"}) {
		t.Errorf("ResolveRules(nil) = %v", got)
	}
}

func TestValidateRuleNames(t *testing.T) {
	t.Parallel()

	registry := lint.NewRegistry()
	registry.Register(newTestRule("alpha", true))
	registry.RegisterAlias("oldAlpha", "alpha")

	deprecated, err := lint.ValidateRuleNames(registry, []string{"alpha", "oldAlpha"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deprecated) != 1 || deprecated[0] != "oldAlpha (use alpha)" {
		t.Errorf("deprecated = %v", deprecated)
	}

	_, err = lint.ValidateRuleNames(registry, []string{"missing"})
	if !errors.Is(err, lint.ErrUnknownRule) {
		t.Errorf("error = %v, want ErrUnknownRule", err)
	}
}

package lint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/swiftfmt/pkg/config"
)

// ErrUnknownRule is returned for rule names that are not registered.
var ErrUnknownRule = errors.New("unknown rule")

// ResolveRules determines which rules to run based on registry and config.
// Rules start from their defaults; rules.enable switches opt-in rules on and
// rules.disable switches any rule off. Names that do not resolve are ignored
// here; use ValidateRuleNames to report them.
func ResolveRules(registry *Registry, cfg *config.Config) []Rule {
	enabled := make(map[string]bool)
	for _, rule := range registry.Rules() {
		enabled[strings.ToLower(rule.Name())] = rule.DefaultEnabled()
	}

	if cfg != nil {
		for _, name := range cfg.Rules.Enable {
			if rule, _, ok := registry.Resolve(name); ok {
				enabled[strings.ToLower(rule.Name())] = true
			}
		}
		for _, name := range cfg.Rules.Disable {
			if rule, _, ok := registry.Resolve(name); ok {
				enabled[strings.ToLower(rule.Name())] = false
			}
		}
	}

	var resolved []Rule
	for _, rule := range registry.Rules() {
		if enabled[strings.ToLower(rule.Name())] {
			resolved = append(resolved, rule)
		}
	}
	return resolved
}

// ValidateRuleNames checks that every name resolves to a registered rule.
// It returns the deprecated names that were used, so callers can warn.
func ValidateRuleNames(registry *Registry, names []string) ([]string, error) {
	var deprecated []string
	for _, name := range names {
		rule, isAlias, ok := registry.Resolve(name)
		if !ok {
			return deprecated, fmt.Errorf("%w: %s", ErrUnknownRule, name)
		}
		if isAlias {
			deprecated = append(deprecated, fmt.Sprintf("%s (use %s)", name, rule.Name()))
		}
	}
	return deprecated, nil
}

package lint

import "github.com/yaklabco/swiftfmt/pkg/formatter"

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override Apply.
//
// Fields are unexported to avoid name collisions with interface methods.
type BaseRule struct {
	name  string
	help  string
	optIn bool
	apply func(*formatter.Formatter)
}

// NewBaseRule creates an enabled-by-default BaseRule.
func NewBaseRule(name, help string) BaseRule {
	return BaseRule{name: name, help: help}
}

// NewOptInRule creates a BaseRule that only runs when enabled explicitly.
func NewOptInRule(name, help string) BaseRule {
	return BaseRule{name: name, help: help, optIn: true}
}

// NewRule creates a rule from a plain function.
func NewRule(name, help string, apply func(*formatter.Formatter)) *BaseRule {
	return &BaseRule{name: name, help: help, apply: apply}
}

// Name returns the rule name.
func (r *BaseRule) Name() string {
	return r.name
}

// Help returns the rule description.
func (r *BaseRule) Help() string {
	return r.help
}

// DefaultEnabled returns whether the rule is enabled by default.
func (r *BaseRule) DefaultEnabled() bool {
	return !r.optIn
}

// Apply runs the function given to NewRule, if any.
func (r *BaseRule) Apply(f *formatter.Formatter) {
	if r.apply != nil {
		r.apply(f)
	}
}

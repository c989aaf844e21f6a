package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/swiftfmt/pkg/config"
	"github.com/yaklabco/swiftfmt/pkg/formatter"
	"github.com/yaklabco/swiftfmt/pkg/lint"
	"github.com/yaklabco/swiftfmt/pkg/tokenize"
)

// ruleCase is a single rule test: input, expected output and change count.
type ruleCase struct {
	name        string
	input       string
	want        string
	wantChanges int
	args        []string
}

// applyRule runs rule once over src with the given option arguments.
func applyRule(t *testing.T, rule lint.Rule, src string, args ...string) *formatter.Formatter {
	t.Helper()

	opts, err := config.ParseArgs(config.DefaultFormatOptions(), args)
	require.NoError(t, err)

	f := formatter.New(tokenize.Tokenize(src),
		formatter.WithOptions(opts),
		formatter.WithChangeTracking(true),
		formatter.WithFilePath("test.swift"),
	)
	f.SetRule(rule.Name())
	rule.Apply(f)
	return f
}

func runRuleCases(t *testing.T, rule lint.Rule, tests []ruleCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := applyRule(t, rule, tt.input, tt.args...)
			require.Equal(t, tt.want, f.String())
			require.Len(t, f.Changes(), tt.wantChanges, "changes: %+v", f.Changes())
			for _, change := range f.Changes() {
				require.Equal(t, rule.Name(), change.Rule)
			}
		})
	}
}

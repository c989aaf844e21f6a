package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortImportsRule(t *testing.T) {
	runRuleCases(t, NewSortImportsRule(), []ruleCase{
		{
			name:        "permutation",
			input:       "import B\nimport A\nimport C\n",
			want:        "import A\nimport B\nimport C\n",
			wantChanges: 2,
		},
		{name: "sorted", input: "import A\nimport B\n", want: "import A\nimport B\n"},
		{
			name:        "case insensitive",
			input:       "import foo\nimport Bar\n",
			want:        "import Bar\nimport foo\n",
			wantChanges: 2,
		},
		{
			name:  "blank line separates blocks",
			input: "import B\n\nimport A\n",
			want:  "import B\n\nimport A\n",
		},
		{
			name:  "comment separates blocks",
			input: "import B\n// tools\nimport A\n",
			want:  "import B\n// tools\nimport A\n",
		},
		{
			name:        "unterminated last line stays unterminated",
			input:       "import B\nimport A",
			want:        "import A\nimport B",
			wantChanges: 4,
		},
		{
			name:        "attributes and modifiers",
			input:       "@testable import Zed\npublic import Alpha\n",
			want:        "public import Alpha\n@testable import Zed\n",
			wantChanges: 2,
		},
		{
			name:        "testable first",
			input:       "import A\n@testable import B\n",
			want:        "@testable import B\nimport A\n",
			wantChanges: 2,
			args:        []string{"--importgrouping", "testable-first"},
		},
		{
			name:  "testable last",
			input: "import B\n@testable import A\n",
			want:  "import B\n@testable import A\n",
			args:  []string{"--importgrouping", "testable-last"},
		},
		{
			name:        "length",
			input:       "import Foundation\nimport UIKit\n",
			want:        "import UIKit\nimport Foundation\n",
			wantChanges: 2,
			args:        []string{"--importgrouping", "length"},
		},
		{
			name:        "two blocks",
			input:       "import D\nimport C\n\nimport B\nimport A\n",
			want:        "import C\nimport D\n\nimport A\nimport B\n",
			wantChanges: 4,
		},
		{
			name:  "disabled line splits block",
			input: "import C\n// swiftformat:disable:next sortImports\nimport B\nimport A\n",
			want:  "import C\n// swiftformat:disable:next sortImports\nimport B\nimport A\n",
		},
		{
			name:  "not an import statement",
			input: "let x = 1; import B\nimport A\n",
			want:  "let x = 1; import B\nimport A\n",
		},
	})
}

func TestSortImportsRule_ChangesAreMoves(t *testing.T) {
	f := applyRule(t, NewSortImportsRule(), "import B\nimport A\n")

	changes := f.Changes()
	require.Len(t, changes, 2)
	for _, change := range changes {
		assert.True(t, change.IsMove, "change %+v", change)
		assert.Equal(t, "test.swift", change.FilePath)
	}
}

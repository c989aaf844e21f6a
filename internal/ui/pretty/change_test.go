package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/swiftfmt/internal/ui/pretty"
	"github.com/yaklabco/swiftfmt/pkg/config"
)

func TestFormatChange(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name     string
		severity config.Severity
		help     string
		want     string
	}{
		{
			name:     "error",
			severity: config.SeverityError,
			help:     "Remove trailing space at end of a line.",
			want:     "Sources/main.swift:12:1: error: (trailingSpace) Remove trailing space at end of a line.\n",
		},
		{
			name:     "warning with multi-line help",
			severity: config.SeverityWarning,
			help:     "Remove trailing\nspace.",
			want:     "Sources/main.swift:12:1: warning: (trailingSpace) Remove trailing space.\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := styles.FormatChange("Sources/main.swift", 12, testCase.severity, "trailingSpace", testCase.help)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestFormatFileError(t *testing.T) {
	t.Parallel()

	got := pretty.NewStyles(false).FormatFileError("main.swift", "Unknown directive swiftformat:foo on line 3")
	assert.Equal(t, "main.swift: error: Unknown directive swiftformat:foo on line 3\n", got)
}

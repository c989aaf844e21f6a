package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/swiftfmt/internal/ui/pretty"
	"github.com/yaklabco/swiftfmt/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		lint  bool
		want  string
	}{
		{
			name:  "clean",
			stats: runner.Stats{FilesProcessed: 1},
			want:  "No changes needed (1 file checked)\n",
		},
		{
			name:  "lint with changes",
			stats: runner.Stats{FilesProcessed: 5, FilesWithChanges: 2, ChangesTotal: 7},
			lint:  true,
			want:  "2 of 5 files require formatting (7 changes)\n",
		},
		{
			name:  "format with skip and errors",
			stats: runner.Stats{FilesProcessed: 3, FilesWithChanges: 2, FilesModified: 1, FilesSkipped: 1, ChangesTotal: 1, FormatErrors: 1},
			want:  "1 of 3 files formatted (1 change), 1 skipped, 1 error\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, styles.FormatSummaryOneLine(testCase.stats, testCase.lint))
		})
	}
}

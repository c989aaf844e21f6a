package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/swiftfmt/internal/cli"
	"github.com/yaklabco/swiftfmt/internal/configloader"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "abc123", Date: "2026-01-01"}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	assert.Equal(t, "swiftfmt", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing global flag --%s", name)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"format", "lint", "rules", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if assert.NoError(t, err, "subcommand %q", name) {
			assert.Equal(t, name, subCmd.Name())
		}
	}

	_, _, err := cmd.Find([]string{"migrate"})
	assert.Error(t, err, "migrate should not exist")
}

func TestRunCommandFlags(t *testing.T) {
	t.Parallel()

	shared := []string{
		"format", "jobs", "enable", "disable", "exclude", "options",
		"stdin-path", "include-vendored", "follow-symlinks", "quiet", "compact",
	}

	tests := []struct {
		command string
		extra   []string
		absent  []string
	}{
		{command: "format", extra: []string{"dry-run", "backup"}, absent: []string{"severity"}},
		{command: "lint", extra: []string{"severity"}, absent: []string{"dry-run", "backup"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.command, func(t *testing.T) {
			t.Parallel()

			cmd := cli.NewRootCommand(testInfo())
			sub, _, err := cmd.Find([]string{testCase.command})
			require.NoError(t, err)

			for _, name := range append(shared, testCase.extra...) {
				assert.NotNil(t, sub.Flags().Lookup(name), "missing --%s", name)
			}
			for _, name := range testCase.absent {
				assert.Nil(t, sub.Flags().Lookup(name), "unexpected --%s", name)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "changes required", err: cli.ErrChangesRequired, want: cli.ExitChangesRequired},
		{name: "files failed", err: cli.ErrFilesFailed, want: cli.ExitFileErrors},
		{name: "wrapped config", err: fmt.Errorf("%w: boom", cli.ErrConfig), want: cli.ExitConfigError},
		{name: "validation", err: &configloader.ValidationError{Message: "bad"}, want: cli.ExitConfigError},
		{name: "usage", err: fmt.Errorf("%w: --format", cli.ErrInvalidUsage), want: cli.ExitInvalidUsage},
		{name: "other", err: errors.New("disk on fire"), want: cli.ExitInternalError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, cli.ExitCode(testCase.err))
		})
	}
}

func TestIsSilent(t *testing.T) {
	t.Parallel()

	assert.True(t, cli.IsSilent(cli.ErrChangesRequired))
	assert.True(t, cli.IsSilent(cli.ErrFilesFailed))
	assert.False(t, cli.IsSilent(cli.ErrConfig))
	assert.False(t, cli.IsSilent(nil))
}

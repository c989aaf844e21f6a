package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/swiftfmt/pkg/config"
)

func newLintCommand(info BuildInfo) *cobra.Command {
	cfg := config.Config{Lint: true}
	flags := &runFlags{toolVersion: info.Version}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Report Swift files that need formatting",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, &cfg, flags)
		},
	}

	addRunFlags(cmd, &cfg, flags)
	cmd.Flags().StringVar(&flags.severity, "severity", "",
		"report level: error (exit 1 on changes) or warning (exit 0)")

	return cmd
}

const lintLongDescription = `Report every change the formatter would make, without writing files.

Each change is printed as <file>:<line>:1: <severity>: (<rule>) <help>.
The command exits with status 1 when any file requires formatting and the
severity is "error" (the default).

Examples:
  swiftfmt lint                      # Check current directory
  swiftfmt lint Sources/App.swift    # Check a single file
  swiftfmt lint --format json        # Machine-readable output for CI
  swiftfmt lint --format sarif       # Code scanning annotations
  swiftfmt lint --severity warning   # Report without failing`

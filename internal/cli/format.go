package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/swiftfmt/internal/configloader"
	"github.com/yaklabco/swiftfmt/internal/logging"
	"github.com/yaklabco/swiftfmt/pkg/config"
	"github.com/yaklabco/swiftfmt/pkg/lint"
	_ "github.com/yaklabco/swiftfmt/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/swiftfmt/pkg/reporter"
	"github.com/yaklabco/swiftfmt/pkg/runner"
)

// stdinName is the display name for source read from standard input.
const stdinName = "<stdin>"

// runFlags are shared by the format and lint commands.
type runFlags struct {
	format          string
	enable          []string
	disable         []string
	exclude         []string
	options         string
	severity        string
	stdinPath       string
	includeVendored bool
	followSymlinks  bool
	quiet           bool
	compact         bool

	// toolVersion labels machine-readable reports.
	toolVersion string
}

func newFormatCommand(info BuildInfo) *cobra.Command {
	var cfg config.Config
	flags := &runFlags{toolVersion: info.Version}

	cmd := &cobra.Command{
		Use:   "format [paths...]",
		Short: "Format Swift files in place",
		Long: `Format Swift source files in place.

By default, formats every .swift file under the current directory. Dependency
directories (Pods, Carthage, ...) and generated files are skipped unless
--include-vendored is set. When no paths are given and standard input is not
a terminal, or the only path is "-", the source is read from stdin and
written to stdout.

Examples:
  swiftfmt format                       # Format current directory
  swiftfmt format Sources/              # Format one directory
  swiftfmt format --dry-run             # Show a diff without writing
  swiftfmt format --backup              # Keep .swiftfmt.orig copies
  swiftfmt format --disable semicolons  # Skip a rule
  cat Foo.swift | swiftfmt format       # Format stdin to stdout`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, &cfg, flags)
		},
	}

	addRunFlags(cmd, &cfg, flags)
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show a diff instead of writing files")
	cmd.Flags().BoolVar(&cfg.Backup, "backup", false, "keep a .swiftfmt.orig copy of each rewritten file")

	return cmd
}

func addRunFlags(cmd *cobra.Command, cfg *config.Config, flags *runFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff, sarif")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "opt-in rules to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rules to disable")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip")
	cmd.Flags().StringVar(&flags.options, "options", "", `formatting options, e.g. "--indent 2 --commas inline"`)
	cmd.Flags().StringVar(&flags.stdinPath, "stdin-path", stdinName, "file name reported for stdin input")
	cmd.Flags().BoolVar(&flags.includeVendored, "include-vendored", false, "also format vendored and generated files")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "walk symlinked directories")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "only print the summary")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minified JSON output")
}

func runFormat(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *runFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}
	cliCfg.Format = config.OutputFormat(format)
	cliCfg.Severity = config.Severity(flags.severity)
	cliCfg.Rules.Enable = flags.enable
	cliCfg.Rules.Disable = flags.disable
	if len(flags.exclude) > 0 {
		cliCfg.Exclude = flags.exclude
	}
	if flags.options != "" {
		cliCfg.Options, err = optionValues(flags.options)
		if err != nil {
			return fmt.Errorf("%w: --options: %w", ErrInvalidUsage, err)
		}
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration resolved",
		logging.FieldMode, modeName(cfg),
		logging.FieldJobs, cfg.Jobs,
		logging.FieldRules, len(lint.ResolveRules(lint.DefaultRegistry, cfg)),
	)

	engine := lint.NewEngine(lint.DefaultRegistry)
	engine.Logger = logger
	pipeline := lint.NewPipeline(engine)

	var result *runner.Result
	stdinMode := (len(args) == 0 && isPipedInput(cmd.InOrStdin())) ||
		(len(args) == 1 && args[0] == "-")
	if stdinMode {
		result, err = processStdin(ctx, cmd, pipeline, cfg, flags.stdinPath)
	} else {
		result, err = runner.New(pipeline).Run(ctx, runner.Options{
			Paths:           args,
			WorkingDir:      workDir,
			ExcludeGlobs:    cfg.Exclude,
			IncludeVendored: flags.includeVendored,
			FollowSymlinks:  flags.followSymlinks,
			Jobs:            cfg.Jobs,
			Config:          cfg,
		})
	}
	if err != nil {
		return fmt.Errorf("%s run failed: %w", modeName(cfg), err)
	}

	logger.Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithChanges, result.Stats.FilesWithChanges,
		logging.FieldFilesModified, result.Stats.FilesModified,
		logging.FieldChanges, result.Stats.ChangesTotal,
	)

	// Formatted stdin goes to stdout, so the report moves to stderr.
	reportWriter := cmd.OutOrStdout()
	if stdinMode && !cfg.Lint && !cfg.DryRun {
		reportWriter = cmd.ErrOrStderr()
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      reportWriter,
		Format:      reportFormat(cfg),
		Color:       colorMode,
		Severity:    cfg.Severity,
		Lint:        cfg.Lint,
		ShowChanges: cfg.Lint && !flags.quiet,
		ShowSummary: !stdinMode || cfg.Lint,
		Compact:     flags.compact,
		Registry:    lint.DefaultRegistry,
		ToolVersion: flags.toolVersion,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return errorFromExitCode(ExitCodeFromResult(result, cfg))
}

// reportFormat picks the report format; a dry run without an explicit JSON
// or SARIF request shows a diff.
func reportFormat(cfg *config.Config) reporter.Format {
	if cfg.DryRun && cfg.Format != config.FormatJSON && cfg.Format != config.FormatSARIF {
		return reporter.FormatDiff
	}
	return reporter.Format(cfg.Format)
}

// processStdin formats standard input. In format mode the output is written
// to stdout.
func processStdin(
	ctx context.Context,
	cmd *cobra.Command,
	pipeline *lint.Pipeline,
	cfg *config.Config,
	name string,
) (*runner.Result, error) {
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	opts := lint.PipelineOptionsFromConfig(cfg)
	opts.Write = false

	result := runner.NewResult()
	result.Stats.FilesDiscovered = 1

	pr, err := pipeline.ProcessContent(ctx, name, content, cfg, opts)
	if err != nil {
		result.Add(runner.FileOutcome{Path: name, Error: err})
		return result, nil
	}
	result.Add(runner.FileOutcome{Path: name, Result: pr})

	if !cfg.Lint && !cfg.DryRun {
		if _, err := io.WriteString(cmd.OutOrStdout(), pr.Output); err != nil {
			return nil, fmt.Errorf("write stdout: %w", err)
		}
	}
	return result, nil
}

// optionValues turns "--name value" arguments into config option values.
// Only the named options are returned, so config files still apply to the
// rest.
func optionValues(text string) (map[string]any, error) {
	args, err := config.SplitArgs(text)
	if err != nil {
		return nil, err
	}
	opts, err := config.ParseArgs(config.DefaultFormatOptions(), args)
	if err != nil {
		return nil, err
	}

	values := make(map[string]any)
	for _, arg := range args {
		name, ok := strings.CutPrefix(arg, "--")
		if !ok {
			continue
		}
		name, _, _ = strings.Cut(name, "=")
		if desc, known := config.Lookup(name); known {
			values[desc.Name] = desc.Get(&opts)
		}
	}
	return values, nil
}

// isPipedInput reports whether r is piped or redirected from a file.
// Terminals and character devices such as /dev/null are not.
func isPipedInput(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return true
	}
	if term.IsTerminal(int(file.Fd())) {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func modeName(cfg *config.Config) string {
	switch {
	case cfg.Lint:
		return "lint"
	case cfg.DryRun:
		return "dry-run"
	default:
		return "format"
	}
}

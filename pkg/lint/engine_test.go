package lint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yaklabco/swiftfmt/pkg/config"
	"github.com/yaklabco/swiftfmt/pkg/formatter"
	"github.com/yaklabco/swiftfmt/pkg/lint"
	"github.com/yaklabco/swiftfmt/pkg/token"
)

// removeSpaces removes every space token.
func removeSpaces(f *formatter.Formatter) {
	f.ForEach(func(index int, tok token.Token) {
		if tok.IsSpace() {
			f.Remove(index)
		}
	})
}

// removeFirstSpace removes one space token per pass.
func removeFirstSpace(f *formatter.Formatter) {
	done := false
	f.ForEach(func(index int, tok token.Token) {
		if !done && tok.IsSpace() {
			f.Remove(index)
			done = true
		}
	})
}

// removeFirstSpaceBeforeIdentifier is removeFirstSpace limited to spaces
// between code tokens, leaving comment text alone.
func removeFirstSpaceBeforeIdentifier(f *formatter.Formatter) {
	done := false
	f.ForEach(func(index int, tok token.Token) {
		next, ok := f.Token(index + 1)
		if !done && tok.IsSpace() && ok && next.Kind == token.Identifier {
			f.Remove(index)
			done = true
		}
	})
}

// toggleTrailingSpace never reaches a fixed point.
func toggleTrailingSpace(f *formatter.Formatter) {
	if last, ok := f.Last(); ok && last.IsSpace() {
		f.RemoveLast()
		return
	}
	f.Insert(f.Len(), token.NewSpace(" "))
}

func newEngine(rules ...lint.Rule) *lint.Engine {
	registry := lint.NewRegistry()
	for _, rule := range rules {
		registry.Register(rule)
	}
	return lint.NewEngine(registry)
}

func TestEngine_FormatSource(t *testing.T) {
	t.Parallel()

	engine := newEngine(lint.NewRule("noSpaces", "Remove spaces.", removeSpaces))
	result, err := engine.FormatSource(context.Background(), "main.swift", []byte("let a = 1\n"), config.NewConfig())
	if err != nil {
		t.Fatalf("FormatSource() error = %v", err)
	}

	if result.Output != "leta=1\n" {
		t.Errorf("Output = %q", result.Output)
	}
	if !result.HasChanges() || len(result.Changes) != 3 {
		t.Errorf("Changes = %+v, want 3", result.Changes)
	}
	for _, change := range result.Changes {
		if change.Rule != "noSpaces" || change.FilePath != "main.swift" || change.Line != 1 {
			t.Errorf("unexpected change %+v", change)
		}
	}
	if !result.Converged || result.Passes != 2 {
		t.Errorf("Converged = %v, Passes = %d", result.Converged, result.Passes)
	}
	if token.Join(result.Tokens) != result.Output {
		t.Error("Tokens and Output disagree")
	}
}

func TestEngine_RepeatsUntilStable(t *testing.T) {
	t.Parallel()

	engine := newEngine(lint.NewRule("oneSpace", "", removeFirstSpace))
	result, err := engine.FormatSource(context.Background(), "x.swift", []byte("a b c"), nil)
	if err != nil {
		t.Fatalf("FormatSource() error = %v", err)
	}

	if result.Output != "abc" {
		t.Errorf("Output = %q", result.Output)
	}
	if result.Passes != 3 || !result.Converged {
		t.Errorf("Passes = %d, Converged = %v", result.Passes, result.Converged)
	}
	if len(result.Changes) != 2 {
		t.Errorf("Changes = %d, want 2", len(result.Changes))
	}
}

func TestEngine_MaxPasses(t *testing.T) {
	t.Parallel()

	engine := newEngine(lint.NewRule("toggle", "", toggleTrailingSpace))
	engine.MaxPasses = 4

	result, err := engine.FormatSource(context.Background(), "x.swift", []byte("a"), nil)
	if err != nil {
		t.Fatalf("FormatSource() error = %v", err)
	}
	if result.Converged {
		t.Error("expected non-converged result")
	}
	if result.Passes != 4 {
		t.Errorf("Passes = %d, want 4", result.Passes)
	}
	if result.Output != "a" {
		t.Errorf("Output = %q, want %q", result.Output, "a")
	}
}

func TestEngine_RuleSelection(t *testing.T) {
	t.Parallel()

	engine := newEngine(lint.NewRule("noSpaces", "", removeSpaces))
	cfg := config.NewConfig()
	cfg.Rules.Disable = []string{"noSpaces"}

	result, err := engine.FormatSource(context.Background(), "x.swift", []byte("a b"), cfg)
	if err != nil {
		t.Fatalf("FormatSource() error = %v", err)
	}
	if result.Output != "a b" || result.HasChanges() {
		t.Errorf("disabled rule ran: %q %+v", result.Output, result.Changes)
	}
}

func TestEngine_DirectiveErrorsReportedOnce(t *testing.T) {
	t.Parallel()

	engine := newEngine(
		lint.NewRule("alpha", "", func(*formatter.Formatter) {}),
		lint.NewRule("oneSpace", "", removeFirstSpaceBeforeIdentifier),
	)
	src := "a b c\n// swiftformat:bogus\n"

	result, err := engine.FormatSource(context.Background(), "x.swift", []byte(src), nil)
	if err != nil {
		t.Fatalf("FormatSource() error = %v", err)
	}
	if len(result.Errors) != 1 || !result.HasErrors() {
		t.Fatalf("Errors = %v, want 1", result.Errors)
	}
	if result.Errors[0].Kind != formatter.ParsingError {
		t.Errorf("Kind = %v", result.Errors[0].Kind)
	}
	if result.Output != "abc\n// swiftformat:bogus\n" {
		t.Errorf("Output = %q", result.Output)
	}
}

func TestEngine_OptionsFromConfig(t *testing.T) {
	t.Parallel()

	var seen string
	engine := newEngine(lint.NewRule("probe", "", func(f *formatter.Formatter) {
		seen = f.Options().Indent
	}))

	cfg := config.NewConfig()
	cfg.Options["indent"] = 2
	if _, err := engine.FormatSource(context.Background(), "x.swift", []byte("a"), cfg); err != nil {
		t.Fatalf("FormatSource() error = %v", err)
	}
	if seen != "  " {
		t.Errorf("indent = %q, want two spaces", seen)
	}

	cfg.Options["indent"] = "lots"
	if _, err := engine.FormatSource(context.Background(), "x.swift", []byte("a"), cfg); err == nil {
		t.Error("expected error for invalid option value")
	}
}

func TestEngine_Cancellation(t *testing.T) {
	t.Parallel()

	engine := newEngine(lint.NewRule("noSpaces", "", removeSpaces))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.FormatSource(ctx, "x.swift", []byte("a b"), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

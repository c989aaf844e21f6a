package config

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every option and rule.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "toml".
	Format string
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	Name           string
	Help           string
	DefaultEnabled bool
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the lint package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	switch opts.Format {
	case "", "yaml":
		return generateYAMLTemplate(opts), nil
	case "toml":
		return generateTOMLTemplate(opts)
	default:
		return nil, fmt.Errorf("unknown template format %q", opts.Format)
	}
}

func generateYAMLTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n# Report level for lint mode: error or warning\n")
	buf.WriteString("severity: error\n\n")
	buf.WriteString("# File patterns to skip (glob patterns)\n")
	buf.WriteString("# exclude:\n#   - \"Pods/**\"\n#   - \"**/*.generated.swift\"\n\n")

	buf.WriteString("# Formatting options\noptions:\n")
	for _, desc := range descriptors {
		if !opts.Full && desc.Default == "" {
			continue
		}
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(desc.Help, commentWrapWidth))
		fmt.Fprintf(&buf, "  %s: %q\n", desc.Name, desc.Default)
	}

	buf.WriteString("\n# Rule selection\nrules:\n")
	rules := getRuleInfos()
	if !opts.Full {
		buf.WriteString("  # enable:\n  #   - sortImports\n  # disable:\n  #   - trailingCommas\n")
		return buf.Bytes()
	}

	var optIn, optOut []RuleInfo
	for _, rule := range rules {
		if rule.DefaultEnabled {
			optOut = append(optOut, rule)
		} else {
			optIn = append(optIn, rule)
		}
	}
	writeRuleList(&buf, "enable", optIn)
	writeRuleList(&buf, "disable", optOut)

	return buf.Bytes()
}

func writeRuleList(buf *bytes.Buffer, key string, rules []RuleInfo) {
	fmt.Fprintf(buf, "  # %s:\n", key)
	for _, rule := range rules {
		fmt.Fprintf(buf, "  #   - %s  # %s\n", rule.Name, rule.Help)
	}
}

// generateTOMLTemplate encodes the default configuration as TOML.
func generateTOMLTemplate(opts TemplateOptions) ([]byte, error) {
	cfg := NewConfig()
	for _, desc := range descriptors {
		if !opts.Full && desc.Default == "" {
			continue
		}
		cfg.Options[desc.Name] = desc.Default
	}
	if opts.Full {
		for _, rule := range getRuleInfos() {
			if !rule.DefaultEnabled {
				cfg.Rules.Enable = append(cfg.Rules.Enable, rule.Name)
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode toml template: %w", err)
	}
	return buf.Bytes(), nil
}

// getRuleInfos returns information about all registered rules, sorted by name.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider == nil {
		return nil
	}
	rules := DefaultRuleInfoProvider()
	slices.SortFunc(rules, func(a, b RuleInfo) int { return strings.Compare(a.Name, b.Name) })
	return rules
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# swiftfmt configuration
# See: https://github.com/yaklabco/swiftfmt`
}

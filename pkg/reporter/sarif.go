package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/swiftfmt/pkg/config"
	"github.com/yaklabco/swiftfmt/pkg/runner"
)

const (
	sarifVersion   = "2.1.0"
	sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	sarifToolName  = "swiftfmt"
	sarifToolURI   = "https://github.com/yaklabco/swiftfmt"

	// sarifErrorRule is the rule id of unreadable files and directive errors.
	sarifErrorRule     = "error"
	sarifErrorRuleHelp = "Files and formatting directives that could not be processed."
)

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and the rules that produced results.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes one formatting rule.
type SARIFRule struct {
	ID               string               `json:"id"`
	ShortDescription SARIFMultiformatText `json:"shortDescription"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
}

// SARIFMultiformatText contains plain text.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult is one change or error.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           *SARIFRegion          `json:"region,omitempty"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion is the affected line. Changes are line granular, so the
// column is always 1.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
}

// SARIFReporter formats results as SARIF 2.1.0 for code scanning tools.
type SARIFReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. The count is the number of SARIF results.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	return len(output.Runs[0].Results), nil
}

func (r *SARIFReporter) buildOutput(result *runner.Result) *SARIFOutput {
	run := SARIFRun{
		Tool: SARIFTool{
			Driver: SARIFDriver{
				Name:           sarifToolName,
				Version:        r.opts.ToolVersion,
				InformationURI: sarifToolURI,
				Rules:          make([]SARIFRule, 0),
			},
		},
		Results: make([]SARIFResult, 0),
	}
	output := &SARIFOutput{Schema: sarifSchemaURI, Version: sarifVersion}

	if result == nil {
		output.Runs = []SARIFRun{run}
		return output
	}

	level := severityToSARIFLevel(r.opts.Severity)
	rulesSeen := make(map[string]bool)
	addRule := func(id, description, ruleLevel string) {
		if rulesSeen[id] {
			return
		}
		rulesSeen[id] = true
		run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, SARIFRule{
			ID:               id,
			ShortDescription: SARIFMultiformatText{Text: description},
			DefaultConfig:    &SARIFRuleConfig{Level: ruleLevel},
		})
	}

	for _, file := range result.Files {
		uri := filepath.ToSlash(displayPath(file.Path, r.opts.WorkingDir))

		if file.Error != nil {
			addRule(sarifErrorRule, sarifErrorRuleHelp, "error")
			run.Results = append(run.Results, sarifError(uri, file.Error.Error()))
			continue
		}
		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		for _, change := range collapseChanges(file.Result.Changes) {
			message := strings.ReplaceAll(ruleHelp(r.opts.Registry, change.Rule), "\n", " ")
			if message == "" {
				message = change.Rule
			}
			addRule(change.Rule, message, level)
			run.Results = append(run.Results, SARIFResult{
				RuleID:  change.Rule,
				Level:   level,
				Message: SARIFMessage{Text: message},
				Locations: []SARIFLocation{{
					PhysicalLocation: SARIFPhysicalLocation{
						ArtifactLocation: SARIFArtifactLocation{URI: uri},
						Region:           &SARIFRegion{StartLine: change.Line, StartColumn: 1},
					},
				}},
			})
		}

		for _, ferr := range file.Result.Errors {
			addRule(sarifErrorRule, sarifErrorRuleHelp, "error")
			run.Results = append(run.Results, sarifError(uri, ferr.Message))
		}
	}

	output.Runs = []SARIFRun{run}
	return output
}

// sarifError is a file-level error result without a region.
func sarifError(uri, message string) SARIFResult {
	return SARIFResult{
		RuleID:  sarifErrorRule,
		Level:   "error",
		Message: SARIFMessage{Text: message},
		Locations: []SARIFLocation{{
			PhysicalLocation: SARIFPhysicalLocation{ArtifactLocation: SARIFArtifactLocation{URI: uri}},
		}},
	}
}

// severityToSARIFLevel converts a lint severity to a SARIF level.
func severityToSARIFLevel(severity config.Severity) string {
	if severity == config.SeverityWarning {
		return "warning"
	}
	return "error"
}

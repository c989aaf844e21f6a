package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/yaklabco/swiftfmt/pkg/config"
)

// envVarPrefix is the prefix for all swiftfmt environment variables.
const envVarPrefix = "SWIFTFMT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"SEVERITY": {field: "severity", typ: envTypeString, help: "Lint severity: error or warning"},
	"FORMAT":   {field: "format", typ: envTypeString, help: "Output format: text, json, diff, or sarif"},
	"JOBS":     {field: "jobs", typ: envTypeInt, help: "Number of parallel workers (0 = auto)"},
	"DRY_RUN":  {field: "dry_run", typ: envTypeBool, help: "Dry-run mode: true or false"},
	"BACKUP":   {field: "backup", typ: envTypeBool, help: "Keep a .swiftfmt.orig copy of rewritten files"},
	"EXCLUDE":  {field: "exclude", typ: envTypeSlice, help: "Comma-separated list of exclude globs"},
	"ENABLE":   {field: "rules.enable", typ: envTypeSlice, help: "Comma-separated list of opt-in rules to enable"},
	"DISABLE":  {field: "rules.disable", typ: envTypeSlice, help: "Comma-separated list of rules to disable"},
	"OPTIONS":  {field: "options", typ: envTypeString, help: "Formatting options as arguments, e.g. \"--indent 2\""},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with SWIFTFMT_ (e.g., SWIFTFMT_JOBS).
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.LookupEnv)
}

func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := lookup(envVar)
		if !ok || value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value, envVar)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace; empty elements are dropped.
func parseSliceValue(value string) []string {
	parts := lo.Map(strings.Split(value, ","), func(part string, _ int) string {
		return strings.TrimSpace(part)
	})
	return lo.Compact(parts)
}

func setStringField(cfg *config.Config, field, value, envVar string) error {
	switch field {
	case "severity":
		cfg.Severity = config.Severity(value)
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "options":
		return setOptionArgs(cfg, value, envVar)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setOptionArgs parses "--name value" pairs into cfg.Options. The values are
// validated later with the rest of the configuration.
func setOptionArgs(cfg *config.Config, value, envVar string) error {
	args, err := config.SplitArgs(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", envVar, err)
	}
	if cfg.Options == nil {
		cfg.Options = make(map[string]any)
	}

	for i := 0; i < len(args); i++ {
		name, ok := strings.CutPrefix(args[i], "--")
		if !ok || name == "" {
			return fmt.Errorf("invalid %s: unexpected argument %q", envVar, args[i])
		}
		if key, val, found := strings.Cut(name, "="); found {
			cfg.Options[key] = val
			continue
		}
		if desc, known := config.Lookup(name); known && desc.Bool &&
			(i+1 == len(args) || strings.HasPrefix(args[i+1], "--")) {
			cfg.Options[name] = true
			continue
		}
		if i+1 == len(args) {
			return fmt.Errorf("invalid %s: option --%s needs a value", envVar, name)
		}
		i++
		cfg.Options[name] = args[i]
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "dry_run":
		cfg.DryRun = value
	case "backup":
		cfg.Backup = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "exclude":
		cfg.Exclude = value
	case "rules.enable":
		cfg.Rules.Enable = value
	case "rules.disable":
		cfg.Rules.Disable = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return lo.MapEntries(envMappings, func(suffix string, mapping envMapping) (string, string) {
		return envVarPrefix + suffix, mapping.help
	})
}

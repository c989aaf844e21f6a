package configloader

import (
	"maps"

	"github.com/samber/lo"

	"github.com/yaklabco/swiftfmt/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Scalar values: override overwrites base if override is non-zero
//   - Options: merged key by key, override wins
//   - Rule lists: concatenated without duplicates (disable still wins at resolve time)
//   - Exclude: override replaces base entirely if non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Severity != "" {
		result.Severity = override.Severity
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// false is the zero value, so a later source can switch these on but
	// never off.
	result.Lint = result.Lint || override.Lint
	result.DryRun = result.DryRun || override.DryRun
	result.Backup = result.Backup || override.Backup

	result.Options = mergeOptions(base.Options, override.Options)

	result.Rules.Enable = lo.Uniq(append(result.Rules.Enable, override.Rules.Enable...))
	result.Rules.Disable = lo.Uniq(append(result.Rules.Disable, override.Rules.Disable...))

	if override.Exclude != nil {
		result.Exclude = append([]string(nil), override.Exclude...)
	}

	return result
}

// mergeOptions returns a new map holding base's options overlaid by override's.
func mergeOptions(base, override map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(override))
	maps.Copy(result, base)
	maps.Copy(result, override)
	return result
}

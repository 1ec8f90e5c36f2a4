package configloader

import "github.com/yaklabco/termlint/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Toggles: override overwrites base if override is non-nil
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	mergeToggle(&result.HalfWidthKatakana, override.HalfWidthKatakana)
	mergeToggle(&result.Parenthesis, override.Parenthesis)
	mergeToggle(&result.QuestionExclamation, override.QuestionExclamation)
	mergeToggle(&result.PunctuationMark, override.PunctuationMark)
	mergeToggle(&result.SpaceInNumberOfUnit, override.SpaceInNumberOfUnit)
	mergeToggle(&result.NGWords, override.NGWords)

	if override.NGWordRuleFile != "" {
		result.NGWordRuleFile = override.NGWordRuleFile
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Booleans where false is the zero value can only be switched on.
	if override.Strict {
		result.Strict = true
	}
	if override.NoContext {
		result.NoContext = true
	}

	// An empty but non-nil units list is meaningful (any letter run).
	if override.Units != nil {
		result.Units = override.Units
	}
	if override.Extensions != nil {
		result.Extensions = override.Extensions
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.EnableChecks != nil {
		result.EnableChecks = override.EnableChecks
	}
	if override.DisableChecks != nil {
		result.DisableChecks = override.DisableChecks
	}

	return &result
}

func mergeToggle(dst **bool, override *bool) {
	if override != nil {
		v := *override
		*dst = &v
	}
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}

package config

import (
	"os"
)

// NewWithOverlay returns New() with overlayPath shallow-merged on top.
// Environment overrides are re-applied so they still win over the overlay.
// A missing, broken or invalid overlay is logged and the base configuration
// is used.
func NewWithOverlay(overlayPath string) *Config {
	cfg := New()
	if overlayPath == "" {
		return cfg
	}

	if _, err := os.Stat(overlayPath); err != nil {
		logger := GetLogger()
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("path", overlayPath).
			Msg("overlay config not found, using global config")
		return cfg
	}

	merged := *cfg
	if err := ShallowMergeYAML(&merged, overlayPath); err != nil {
		logger := GetLogger()
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("path", overlayPath).
			Msg("failed to merge overlay config, using global config")
		return cfg
	}

	if err := merged.Validate(); err != nil {
		logger := GetLogger()
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("path", overlayPath).
			Msg("overlay config has invalid values, using global config")
		return cfg
	}

	merged.applyEnvOverrides()
	return &merged
}

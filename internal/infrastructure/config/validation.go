package config

import (
	"fmt"
	"strings"

	"github.com/bnema/tiler/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateTiles(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePalette(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	if config.Layout.Gap < 0 || config.Layout.Gap > maxGap {
		return []string{fmt.Sprintf("layout.gap must be between 0 and %v", maxGap)}
	}
	return nil
}

func validateTiles(config *Config) []string {
	if strings.TrimSpace(config.Tiles.DefaultTitle) == "" {
		return []string{"tiles.default_title must not be empty"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of: trace, debug, info, warn, error")
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: console, json")
	}
	return validationErrors
}

func validatePalette(config *Config) []string {
	p := config.Appearance.Palette
	return validation.ValidatePaletteHex("appearance.palette",
		validation.PaletteField{Key: "background", Value: p.Background},
		validation.PaletteField{Key: "surface", Value: p.Surface},
		validation.PaletteField{Key: "surface_variant", Value: p.SurfaceVariant},
		validation.PaletteField{Key: "text", Value: p.Text},
		validation.PaletteField{Key: "muted", Value: p.Muted},
		validation.PaletteField{Key: "accent", Value: p.Accent},
		validation.PaletteField{Key: "border", Value: p.Border},
	)
}

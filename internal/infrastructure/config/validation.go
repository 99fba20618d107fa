package config

import (
	"fmt"
	"strings"

	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/domain/validation"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "warning": true,
	"error": true, "fatal": true, "panic": true, "disabled": true, "off": true,
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLightbox(config)...)
	validationErrors = append(validationErrors, validateGallery(config)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLightbox(config *Config) []string {
	var validationErrors []string
	lb := config.Lightbox

	switch lb.InputMode {
	case InputModePointer, InputModeTouch:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("lightbox.input_mode must be %q or %q, got %q", InputModePointer, InputModeTouch, lb.InputMode))
	}
	if !(lb.MinScale >= entity.ScaleMin && lb.MinScale <= entity.ScaleMax) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("lightbox.min_scale must be between %.1f and %.1f", entity.ScaleMin, entity.ScaleMax))
	}
	if !(lb.MaxScale >= lb.MinScale && lb.MaxScale <= entity.ScaleMax) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("lightbox.max_scale must be between lightbox.min_scale and %.1f", entity.ScaleMax))
	}
	if lb.ClickZoomScale <= lb.MinScale || lb.ClickZoomScale > lb.MaxScale {
		validationErrors = append(validationErrors,
			"lightbox.click_zoom_scale must be greater than lightbox.min_scale and at most lightbox.max_scale")
	}
	return validationErrors
}

func validateGallery(config *Config) []string {
	var validationErrors []string
	if len(config.Gallery.Extensions) == 0 {
		validationErrors = append(validationErrors, "gallery.extensions must list at least one extension")
	}
	for _, ext := range config.Gallery.Extensions {
		if ext == "" || ext == "." {
			validationErrors = append(validationErrors, "gallery.extensions must not contain empty entries")
			break
		}
	}
	if strings.ContainsAny(config.Gallery.Manifest, `/\`) {
		validationErrors = append(validationErrors, "gallery.manifest must be a file name, not a path")
	}
	if config.Gallery.CacheSize < 0 {
		validationErrors = append(validationErrors, "gallery.cache_size must be non-negative")
	}
	return validationErrors
}

func validateKeybindings(config *Config) []string {
	var validationErrors []string
	owner := make(map[string]string)

	for _, action := range []string{"close", "previous", "next"} {
		keys := config.Keybindings.GetKeyBindings()[action]
		if len(keys) == 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("keybindings.%s must have at least one key", action))
			continue
		}
		for _, key := range keys {
			norm := strings.ToLower(key)
			if prev, ok := owner[norm]; ok && prev != action {
				validationErrors = append(validationErrors,
					fmt.Sprintf("keybindings.%s: key %q is already bound to %s", action, key, prev))
				continue
			}
			owner[norm] = action
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if config.Logging.Level != "" && !validLogLevels[config.Logging.Level] {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be \"console\" or \"json\"")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors, validatePalette("appearance.light_palette", config.Appearance.LightPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.dark_palette", config.Appearance.DarkPalette)...)
	return validationErrors
}

func validatePalette(field string, p ColorPalette) []string {
	return validation.ValidatePaletteHex(field,
		validation.ColorToken{Name: "background", Value: p.Background},
		validation.ColorToken{Name: "surface", Value: p.Surface},
		validation.ColorToken{Name: "text", Value: p.Text},
		validation.ColorToken{Name: "muted", Value: p.Muted},
		validation.ColorToken{Name: "accent", Value: p.Accent},
		validation.ColorToken{Name: "border", Value: p.Border},
	)
}

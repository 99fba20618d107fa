package config

import (
	"fmt"
	"strings"

	"github.com/bnema/lightbox/internal/application/port"
	"github.com/bnema/lightbox/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLightbox    = "Lightbox"
	SectionGallery     = "Gallery"
	SectionKeybindings = "Keybindings"
	SectionLogging     = "Logging"
	SectionAppearance  = "Appearance"
)

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 32)
	keys = append(keys, p.getLightboxKeys(defaults)...)
	keys = append(keys, p.getGalleryKeys(defaults)...)
	keys = append(keys, p.getKeybindingKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getLightboxKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "lightbox.input_mode",
			Type:        "string",
			Default:     string(defaults.Lightbox.InputMode),
			Description: "Click zooms at a point (pointer) or pinch zooms (touch)",
			Values:      []string{string(InputModePointer), string(InputModeTouch)},
			Section:     SectionLightbox,
		},
		{
			Key:         "lightbox.click_zoom_scale",
			Type:        "float64",
			Default:     formatFloat(defaults.Lightbox.ClickZoomScale),
			Description: "Scale a click zoom-in jumps to",
			Range:       "min_scale-max_scale",
			Section:     SectionLightbox,
		},
		{
			Key:         "lightbox.min_scale",
			Type:        "float64",
			Default:     formatFloat(defaults.Lightbox.MinScale),
			Description: "Smallest pinch scale",
			Range:       "1.0-4.0",
			Section:     SectionLightbox,
		},
		{
			Key:         "lightbox.max_scale",
			Type:        "float64",
			Default:     formatFloat(defaults.Lightbox.MaxScale),
			Description: "Largest pinch scale",
			Range:       "min_scale-4.0",
			Section:     SectionLightbox,
		},
	}
}

func (*SchemaProvider) getGalleryKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "gallery.root",
			Type:        "string",
			Default:     defaults.Gallery.Root,
			Description: "Directory whose subdirectories are gallery groups",
			Section:     SectionGallery,
		},
		{
			Key:         "gallery.manifest",
			Type:        "string",
			Default:     defaults.Gallery.Manifest,
			Description: "Metadata file inside the root (.toml, .yaml or .yml)",
			Section:     SectionGallery,
		},
		{
			Key:         "gallery.extensions",
			Type:        "[]string",
			Default:     strings.Join(defaults.Gallery.Extensions, ", "),
			Description: "Image file extensions shown in groups",
			Section:     SectionGallery,
		},
		{
			Key:         "gallery.cache_size",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Gallery.CacheSize),
			Description: "Decoded images kept in memory",
			Range:       ">=1",
			Section:     SectionGallery,
		},
	}
}

func (*SchemaProvider) getKeybindingKeys(defaults *Config) []entity.ConfigKeyInfo {
	bindings := defaults.Keybindings.GetKeyBindings()
	descriptions := map[string]string{
		"close":    "Keys that close the overlay",
		"previous": "Keys that show the previous image",
		"next":     "Keys that show the next image",
	}

	keys := make([]entity.ConfigKeyInfo, 0, len(bindings))
	for _, action := range []string{"close", "previous", "next"} {
		keys = append(keys, entity.ConfigKeyInfo{
			Key:         "keybindings." + action,
			Type:        "[]string",
			Default:     strings.Join(bindings[action], ", "),
			Description: descriptions[action],
			Section:     SectionKeybindings,
		})
	}
	return keys
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "(XDG state dir)",
			Description: "Directory of the rotating log file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.EnableFileLog),
			Description: "Write logs to a file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Size in MB that triggers log rotation",
			Range:       ">=1",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Rotated log files to keep",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxAge),
			Description: "Days to keep rotated log files",
			Range:       ">=0",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "appearance.color_scheme",
			Type:        "string",
			Default:     defaults.Appearance.ColorScheme,
			Description: "Palette used by the terminal viewer",
			Values:      []string{ColorSchemeDark, ColorSchemeLight},
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.light_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Light palette: background, surface, text, muted, accent, border",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.dark_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Dark palette: background, surface, text, muted, accent, border",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.show_caption",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Appearance.ShowCaption),
			Description: "Show alt text and position under the overlay",
			Section:     SectionAppearance,
		},
	}
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

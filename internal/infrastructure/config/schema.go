package config

// Config represents the complete configuration for lightbox.
type Config struct {
	Lightbox    LightboxConfig    `mapstructure:"lightbox" toml:"lightbox" json:"lightbox"`
	Gallery     GalleryConfig     `mapstructure:"gallery" toml:"gallery" json:"gallery"`
	Keybindings KeybindingsConfig `mapstructure:"keybindings" toml:"keybindings" json:"keybindings"`
	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
	Appearance  AppearanceConfig  `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// InputMode selects how zoom gestures are interpreted.
type InputMode string

const (
	InputModePointer InputMode = "pointer"
	InputModeTouch   InputMode = "touch"
)

// LightboxConfig holds zoom behaviour of the overlay.
type LightboxConfig struct {
	// InputMode is "pointer" (click to zoom at point) or "touch" (pinch to zoom).
	InputMode InputMode `mapstructure:"input_mode" toml:"input_mode" json:"input_mode" jsonschema:"enum=pointer,enum=touch"`
	// ClickZoomScale is the scale a click zoom-in jumps to, and the pinch baseline when zoomed.
	ClickZoomScale float64 `mapstructure:"click_zoom_scale" toml:"click_zoom_scale" json:"click_zoom_scale"`
	MinScale       float64 `mapstructure:"min_scale" toml:"min_scale" json:"min_scale"`
	MaxScale       float64 `mapstructure:"max_scale" toml:"max_scale" json:"max_scale"`
}

// GalleryConfig locates the image groups shown by the viewer.
type GalleryConfig struct {
	// Root is a directory whose subdirectories are the gallery groups.
	Root string `mapstructure:"root" toml:"root" json:"root"`
	// Manifest is the per-root file carrying group titles and alt text.
	Manifest   string   `mapstructure:"manifest" toml:"manifest" json:"manifest"`
	Extensions []string `mapstructure:"extensions" toml:"extensions" json:"extensions"`
	// CacheSize is the number of decoded images kept in memory.
	CacheSize int `mapstructure:"cache_size" toml:"cache_size" json:"cache_size"`
}

// KeybindingsConfig maps lightbox actions to key names.
// Keys use the "ctrl+shift+x" notation; arrow keys are "left" and "right".
type KeybindingsConfig struct {
	Close    []string `mapstructure:"close" toml:"close" json:"close"`
	Previous []string `mapstructure:"previous" toml:"previous" json:"previous"`
	Next     []string `mapstructure:"next" toml:"next" json:"next"`
}

// GetKeyBindings returns action -> keys.
func (k *KeybindingsConfig) GetKeyBindings() map[string][]string {
	return map[string][]string{
		"close":    k.Close,
		"previous": k.Previous,
		"next":     k.Next,
	}
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age" json:"max_age"`
}

// Color schemes for the terminal viewer.
const (
	ColorSchemeDark  = "dark"
	ColorSchemeLight = "light"
)

// AppearanceConfig holds terminal rendering preferences.
type AppearanceConfig struct {
	ColorScheme  string       `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=dark,enum=light"`
	LightPalette ColorPalette `mapstructure:"light_palette" toml:"light_palette" json:"light_palette"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" toml:"dark_palette" json:"dark_palette"`
	// ShowCaption renders the image alt text and position under the overlay.
	ShowCaption bool `mapstructure:"show_caption" toml:"show_caption" json:"show_caption"`
}

// ColorPalette contains semantic color tokens for light/dark themes.
type ColorPalette struct {
	Background string `mapstructure:"background" toml:"background" json:"background"`
	Surface    string `mapstructure:"surface" toml:"surface" json:"surface"`
	Text       string `mapstructure:"text" toml:"text" json:"text"`
	Muted      string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent     string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border     string `mapstructure:"border" toml:"border" json:"border"`
}

// ActivePalette returns the palette selected by ColorScheme.
func (a *AppearanceConfig) ActivePalette() ColorPalette {
	if a.ColorScheme == ColorSchemeLight {
		return a.LightPalette
	}
	return a.DarkPalette
}

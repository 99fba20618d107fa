// Package config loads, validates and watches the lightbox configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/lightbox/internal/logging"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForDir(configDir)
}

// NewManagerForDir creates a configuration manager that reads config.toml from configDir.
func NewManagerForDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// LIGHTBOX_LIGHTBOX_INPUT_MODE, LIGHTBOX_GALLERY_ROOT, ...
	v.SetEnvPrefix("LIGHTBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "LIGHTBOX_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LIGHTBOX_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "LIGHTBOX_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LIGHTBOX_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile = filepath.Join(m.configDir, configFileName)
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	switch InputMode(strings.ToLower(strings.TrimSpace(string(config.Lightbox.InputMode)))) {
	case InputModeTouch:
		config.Lightbox.InputMode = InputModeTouch
	case InputModePointer, "":
		config.Lightbox.InputMode = InputModePointer
	default:
		// left as-is so validation reports it
	}

	for i, ext := range config.Gallery.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		config.Gallery.Extensions[i] = ext
	}
	config.Gallery.Root = strings.TrimSpace(config.Gallery.Root)
	if config.Gallery.Manifest == "" {
		config.Gallery.Manifest = defaultManifestName
	}

	config.Keybindings.Close = normalizeKeys(config.Keybindings.Close)
	config.Keybindings.Previous = normalizeKeys(config.Keybindings.Previous)
	config.Keybindings.Next = normalizeKeys(config.Keybindings.Next)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	switch strings.ToLower(config.Appearance.ColorScheme) {
	case ColorSchemeLight:
		config.Appearance.ColorScheme = ColorSchemeLight
	default:
		config.Appearance.ColorScheme = ColorSchemeDark
	}
}

func normalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configFileName)
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, configFileName)

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	log := logging.NewFromEnv()
	log.Info().Str("file", configFile).Msg("created default configuration file")

	if _, err := WriteSchemaFile(m.configDir); err != nil {
		log.Warn().Err(err).Msg("failed to write config schema")
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLightboxDefaults(defaults)
	m.setGalleryDefaults(defaults)
	m.setKeybindingDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setLightboxDefaults(defaults *Config) {
	m.viper.SetDefault("lightbox.input_mode", string(defaults.Lightbox.InputMode))
	m.viper.SetDefault("lightbox.click_zoom_scale", defaults.Lightbox.ClickZoomScale)
	m.viper.SetDefault("lightbox.min_scale", defaults.Lightbox.MinScale)
	m.viper.SetDefault("lightbox.max_scale", defaults.Lightbox.MaxScale)
}

func (m *Manager) setGalleryDefaults(defaults *Config) {
	m.viper.SetDefault("gallery.root", defaults.Gallery.Root)
	m.viper.SetDefault("gallery.manifest", defaults.Gallery.Manifest)
	m.viper.SetDefault("gallery.extensions", defaults.Gallery.Extensions)
	m.viper.SetDefault("gallery.cache_size", defaults.Gallery.CacheSize)
}

func (m *Manager) setKeybindingDefaults(defaults *Config) {
	for action, keys := range defaults.Keybindings.GetKeyBindings() {
		m.viper.SetDefault("keybindings."+action, keys)
	}
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.color_scheme", defaults.Appearance.ColorScheme)
	m.viper.SetDefault("appearance.show_caption", defaults.Appearance.ShowCaption)
	m.setPaletteDefaults("appearance.light_palette", defaults.Appearance.LightPalette)
	m.setPaletteDefaults("appearance.dark_palette", defaults.Appearance.DarkPalette)
}

func (m *Manager) setPaletteDefaults(prefix string, palette ColorPalette) {
	m.viper.SetDefault(prefix+".background", palette.Background)
	m.viper.SetDefault(prefix+".surface", palette.Surface)
	m.viper.SetDefault(prefix+".text", palette.Text)
	m.viper.SetDefault(prefix+".muted", palette.Muted)
	m.viper.SetDefault(prefix+".accent", palette.Accent)
	m.viper.SetDefault(prefix+".border", palette.Border)
}

package config

// Default configuration constants
const (
	// Lightbox defaults
	defaultClickZoomScale = 2.0
	defaultMinScale       = 1.0
	defaultMaxScale       = 4.0

	// Gallery defaults
	defaultManifestName = "gallery.toml"
	defaultCacheSize    = 32 // decoded images

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7 // days
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Lightbox: LightboxConfig{
			InputMode:      InputModePointer,
			ClickZoomScale: defaultClickZoomScale,
			MinScale:       defaultMinScale,
			MaxScale:       defaultMaxScale,
		},
		Gallery: GalleryConfig{
			Root:       ".",
			Manifest:   defaultManifestName,
			Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
			CacheSize:  defaultCacheSize,
		},
		Keybindings: KeybindingsConfig{
			Close:    []string{"escape", "q"},
			Previous: []string{"left", "h"},
			Next:     []string{"right", "l"},
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAge:        defaultMaxLogAgeDays,
		},
		Appearance: AppearanceConfig{
			ColorScheme: ColorSchemeDark,
			LightPalette: ColorPalette{
				Background: "#f8f8f8",
				Surface:    "#ececec",
				Text:       "#1a1a1a",
				Muted:      "#6a6a6a",
				Accent:     "#2e7d32",
				Border:     "#c8c8c8",
			},
			DarkPalette: ColorPalette{
				Background: "#0a0a0b",
				Surface:    "#1b1b1f",
				Text:       "#e4e4e7",
				Muted:      "#848489",
				Accent:     "#4ade80",
				Border:     "#2e2e33",
			},
			ShowCaption: true,
		},
	}
}

func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

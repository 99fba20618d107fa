// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/lightbox/internal/application/port"
	"github.com/bnema/lightbox/internal/application/usecase"
	"github.com/bnema/lightbox/internal/cli/styles"
	"github.com/bnema/lightbox/internal/domain/build"
	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/infrastructure/config"
	"github.com/bnema/lightbox/internal/infrastructure/gallery"
	"github.com/bnema/lightbox/internal/infrastructure/raster"
	"github.com/bnema/lightbox/internal/logging"
	"github.com/bnema/lightbox/internal/ui/input"
)

// AppOptions tunes application startup.
type AppOptions struct {
	// Verbose mirrors debug logs to stderr. Never set it for full-screen commands.
	Verbose bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	// ConfigErr is the error that made startup fall back to defaults, if any.
	ConfigErr error
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with config, theme and logger.
func NewApp(opts AppOptions) (*App, error) {
	mgr, cfg, cfgErr := loadConfig()

	// Create theme from config
	theme := styles.NewTheme(cfg)

	logCfg := logging.ConfigFromEnv(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	if opts.Verbose {
		logCfg.Level = logging.ParseLevel("debug")
	}

	logger, logCleanup, err := logging.NewWithFile(logCfg, logging.FileConfig{
		Enabled:       cfg.Logging.EnableFileLog,
		LogDir:        cfg.Logging.LogDir,
		MaxSizeMB:     cfg.Logging.MaxSizeMB,
		MaxBackups:    cfg.Logging.MaxBackups,
		MaxAgeDays:    cfg.Logging.MaxAge,
		WriteToStderr: opts.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		ConfigErr:     cfgErr,
		Theme:         theme,
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ViewerOptions selects the gallery and the zoom behaviour of a viewer.
type ViewerOptions struct {
	// Root overrides gallery.root from config when set.
	Root string
	// InputMode overrides lightbox.input_mode from config when set.
	InputMode string
	// Renderer receives every render output; may be nil.
	Renderer port.LightboxRenderer
}

// Viewer is the lightbox stack over one gallery root.
type Viewer struct {
	Source     *gallery.FileSource
	Lightbox   *usecase.LightboxController
	OpenUC     *usecase.OpenGalleryUseCase
	Dispatcher *input.Dispatcher
	Images     *raster.Store
}

// NewViewer wires gallery source, controller, use case and input dispatcher.
func (a *App) NewViewer(opts ViewerOptions) (*Viewer, error) {
	root := opts.Root
	if root == "" {
		root = a.Config.Gallery.Root
	}
	source, err := gallery.NewFileSource(root, gallery.Options{
		Manifest:   a.Config.Gallery.Manifest,
		Extensions: a.Config.Gallery.Extensions,
	})
	if err != nil {
		return nil, err
	}

	lightbox, dispatcher, err := a.NewLightbox(opts.InputMode, opts.Renderer)
	if err != nil {
		return nil, err
	}

	logging.FromContext(a.ctx).Debug().
		Str("component", "viewer").
		Str("root", source.Root()).
		Str("input_mode", string(lightbox.Config().InputMode)).
		Msg("viewer ready")

	return &Viewer{
		Source:     source,
		Lightbox:   lightbox,
		OpenUC:     usecase.NewOpenGalleryUseCase(source, lightbox),
		Dispatcher: dispatcher,
		Images:     raster.NewStore(a.Config.Gallery.CacheSize),
	}, nil
}

// NewLightbox creates a controller and its input dispatcher without a gallery.
// modeOverride replaces lightbox.input_mode from config when set.
func (a *App) NewLightbox(modeOverride string, renderer port.LightboxRenderer) (*usecase.LightboxController, *input.Dispatcher, error) {
	lbCfg, err := a.lightboxConfig(modeOverride)
	if err != nil {
		return nil, nil, err
	}

	lightbox := usecase.NewLightboxController(lbCfg, renderer)
	shortcuts := input.NewShortcutTable(a.ctx, &a.Config.Keybindings)
	return lightbox, input.NewDispatcher(lightbox, shortcuts), nil
}

func (a *App) lightboxConfig(modeOverride string) (usecase.LightboxConfig, error) {
	mode := string(a.Config.Lightbox.InputMode)
	if modeOverride != "" {
		mode = modeOverride
	}
	inputMode, ok := entity.ParseInputMode(mode)
	if !ok {
		return usecase.LightboxConfig{}, fmt.Errorf("invalid input mode %q (want pointer or touch)", mode)
	}

	return usecase.LightboxConfig{
		InputMode:      inputMode,
		ClickZoomScale: a.Config.Lightbox.ClickZoomScale,
		MinScale:       a.Config.Lightbox.MinScale,
		MaxScale:       a.Config.Lightbox.MaxScale,
	}, nil
}

// loadConfig loads configuration from standard locations.
// On failure it returns the defaults together with the error.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}

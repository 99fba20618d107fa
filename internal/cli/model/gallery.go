// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lightbox/internal/application/usecase"
	"github.com/bnema/lightbox/internal/cli/styles"
	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/infrastructure/config"
	"github.com/bnema/lightbox/internal/infrastructure/raster"
	"github.com/bnema/lightbox/internal/logging"
	"github.com/bnema/lightbox/internal/ui/input"
)

// footerRows is the status line plus the help line under the overlay.
const footerRows = 2

type galleryState int

const (
	stateLoading galleryState = iota
	stateList
	stateLightbox
)

// GalleryModel is the Bubble Tea model for the gallery browser and its
// lightbox overlay. Mouse input drives the overlay in pointer mode.
type GalleryModel struct {
	// UI components
	help     help.Model
	keys     styles.GalleryKeyMap
	lbKeys   styles.LightboxKeyMap
	list     list.Model
	loading  styles.LoadingModel
	status   *styles.LightboxRenderer
	showHelp bool

	// State
	state   galleryState
	groups  []*entity.Group
	group   *entity.Group
	gesture input.PointerGesture
	image   image.Image
	imgURL  string
	imgErr  error
	frame   *raster.Frame
	lines   []string
	width   int
	height  int
	err     error

	// Config
	background   color.RGBA
	quality      raster.Quality
	initialGroup entity.GroupID
	initialIndex int

	// Dependencies
	ctx        context.Context
	openUC     *usecase.OpenGalleryUseCase
	lightbox   *usecase.LightboxController
	dispatcher *input.Dispatcher
	images     *raster.Store
	theme      *styles.Theme
}

// GalleryModelConfig holds configuration for the gallery model.
type GalleryModelConfig struct {
	OpenUC     *usecase.OpenGalleryUseCase
	Lightbox   *usecase.LightboxController
	Dispatcher *input.Dispatcher
	Images     *raster.Store
	Config     *config.Config
	Quality    raster.Quality

	// InitialGroup, when set, is opened as soon as the groups are loaded.
	InitialGroup entity.GroupID
	InitialIndex int
}

// NewGalleryModel creates a new gallery browser model.
func NewGalleryModel(ctx context.Context, theme *styles.Theme, cfg GalleryModelConfig) GalleryModel {
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = config.DefaultConfig()
	}

	m := GalleryModel{
		help:         styles.NewStyledHelp(theme),
		keys:         styles.DefaultGalleryKeyMap(),
		lbKeys:       styles.NewLightboxKeyMap(appCfg.Keybindings),
		list:         styles.NewGroupList(theme, nil, 80, 24-footerRows),
		loading:      styles.NewLoading(theme, "Scanning gallery..."),
		status:       styles.NewLightboxRenderer(theme, appCfg.Appearance.ShowCaption),
		state:        stateLoading,
		width:        80,
		height:       24,
		quality:      cfg.Quality,
		initialGroup: cfg.InitialGroup,
		initialIndex: cfg.InitialIndex,
		ctx:          ctx,
		openUC:       cfg.OpenUC,
		lightbox:     cfg.Lightbox,
		dispatcher:   cfg.Dispatcher,
		images:       cfg.Images,
		theme:        theme,
	}
	m.background = paletteBackground(appCfg)
	return m
}

// Err returns the error that stopped the browser, if any.
func (m GalleryModel) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m GalleryModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Spinner.Tick, m.loadGroups)
}

// ConfigReloadedMsg carries a configuration reloaded from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// groupsLoadedMsg is sent when the gallery has been scanned.
type groupsLoadedMsg struct {
	groups []*entity.Group
	err    error
}

// groupOpenedMsg is sent when a group has been opened in the lightbox.
type groupOpenedMsg struct {
	out *usecase.OpenGalleryOutput
	err error
}

// imageLoadedMsg is sent when an image has been decoded.
type imageLoadedMsg struct {
	url string
	img image.Image
	err error
}

func (m GalleryModel) loadGroups() tea.Msg {
	log := logging.FromContext(m.ctx)
	log.Debug().Msg("loading gallery groups")

	if m.openUC == nil {
		return groupsLoadedMsg{err: fmt.Errorf("gallery not available")}
	}

	groups, err := m.openUC.ListGroups(m.ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load gallery groups")
		return groupsLoadedMsg{err: err}
	}

	log.Debug().Int("count", len(groups)).Msg("loaded gallery groups")
	return groupsLoadedMsg{groups: groups}
}

func (m GalleryModel) openGroup(id entity.GroupID, index int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.openUC.Execute(m.ctx, usecase.OpenGalleryInput{GroupID: id, StartIndex: index})
		return groupOpenedMsg{out: out, err: err}
	}
}

func (m GalleryModel) loadImage(url string) tea.Cmd {
	return func() tea.Msg {
		img, err := m.images.Image(m.ctx, url)
		return imageLoadedMsg{url: url, img: img, err: err}
	}
}

// Update implements tea.Model.
func (m GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-footerRows, 1))
		m.help.Width = msg.Width
		m.renderFrame()
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		return m, cmd

	case groupsLoadedMsg:
		m.state = stateList
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.groups = msg.groups
		cmd := m.list.SetItems(styles.GroupItems(msg.groups))
		if m.initialGroup != "" {
			id, index := m.initialGroup, m.initialIndex
			m.initialGroup = ""
			return m, tea.Batch(cmd, m.openGroup(id, index))
		}
		return m, cmd

	case groupOpenedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.group = msg.out.Group
		m.state = stateLightbox
		m.gesture.Reset()
		cmd := m.sync()
		return m, cmd

	case imageLoadedMsg:
		if msg.url != m.imgURL {
			return m, nil
		}
		m.image, m.imgErr = msg.img, msg.err
		m.renderFrame()
		m.prefetchNeighbors()
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case tea.KeyMsg:
		if m.state == stateLightbox {
			return m.handleLightboxKey(msg)
		}
		return m.handleListKey(msg)

	case tea.MouseMsg:
		if m.state == stateLightbox {
			return m.handleMouse(msg)
		}
	}

	if m.state == stateList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m GalleryModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateLoading {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	// While the filter input is focused every key belongs to it.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.state = stateLoading
		return m, tea.Batch(m.loading.Spinner.Tick, m.loadGroups)
	case key.Matches(msg, m.keys.Open):
		if item, ok := m.list.SelectedItem().(styles.GroupItem); ok {
			return m, m.openGroup(item.ID, 0)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m GalleryModel) handleLightboxKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	if !m.dispatcher.Dispatch(m.ctx, input.KeyDown{Key: msg.String()}) {
		return m, nil
	}
	cmd := m.sync()
	return m, cmd
}

func (m GalleryModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.frame == nil {
		return m, nil
	}

	// Cell centers in half-block pixel space.
	x := float64(msg.X) + 0.5
	y := float64(msg.Y)*2 + 1
	bounds := rectOf(m.frame.Bounds)

	var events []input.Event
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		events = m.gesture.Press(x, y, bounds)
	case tea.MouseActionMotion:
		events = m.gesture.Motion(x, y)
	case tea.MouseActionRelease:
		events = m.gesture.Release(x, y, bounds)
	}
	if len(events) == 0 {
		return m, nil
	}

	for _, ev := range events {
		m.dispatcher.Dispatch(m.ctx, ev)
	}
	cmd := m.sync()
	return m, cmd
}

// sync reads the controller output after a change: it leaves the overlay
// when closed, starts loading a newly displayed image and redraws.
func (m *GalleryModel) sync() tea.Cmd {
	out := m.lightbox.Render()
	if !out.Visible {
		m.state = stateList
		m.gesture.Reset()
		m.image, m.imgURL, m.imgErr = nil, "", nil
		m.frame, m.lines = nil, nil
		return nil
	}

	if out.Image != nil && out.Image.URL != m.imgURL {
		m.imgURL = out.Image.URL
		m.image, m.imgErr = nil, nil
		m.frame, m.lines = nil, nil
		return m.loadImage(m.imgURL)
	}

	m.renderFrame()
	return nil
}

func (m *GalleryModel) renderFrame() {
	if m.state != stateLightbox || m.image == nil {
		return
	}
	out := m.lightbox.Render()
	vp := raster.CellViewport(m.width, max(m.height-footerRows, 1))
	m.frame = raster.Render(m.image, out.Transform, vp, m.background, m.quality)
	m.lines = m.frame.Lines()
}

func (m *GalleryModel) prefetchNeighbors() {
	if m.group == nil || m.group.Len() < 2 {
		return
	}
	idx := m.lightbox.Index()
	if idx < 0 {
		return
	}
	n := m.group.Len()
	next := m.group.Images[(idx+1)%n].URL
	prev := m.group.Images[(idx-1+n)%n].URL
	m.images.Prefetch(m.ctx, next, prev)
}

func (m *GalleryModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.theme = styles.NewTheme(cfg)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = m.width
	m.lbKeys = styles.NewLightboxKeyMap(cfg.Keybindings)
	m.status = styles.NewLightboxRenderer(m.theme, cfg.Appearance.ShowCaption)
	m.background = paletteBackground(cfg)
	m.dispatcher.SetShortcuts(input.NewShortcutTable(m.ctx, &cfg.Keybindings))
	m.renderFrame()

	logging.FromContext(m.ctx).Info().Msg("configuration reloaded")
}

// View implements tea.Model.
func (m GalleryModel) View() string {
	switch m.state {
	case stateLoading:
		return m.centered(m.loading.View(), m.height)
	case stateLightbox:
		return m.lightboxView()
	default:
		return m.listView()
	}
}

func (m GalleryModel) listView() string {
	var sb strings.Builder
	if m.err != nil {
		sb.WriteString(m.theme.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err)))
		sb.WriteString("\n")
	}
	if len(m.groups) == 0 && m.err == nil {
		sb.WriteString(m.theme.Subtle.Render("No image groups found."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.list.View())
		sb.WriteString("\n")
	}
	if m.showHelp {
		sb.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sb.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return sb.String()
}

func (m GalleryModel) lightboxView() string {
	area := max(m.height-footerRows, 1)

	var body string
	switch {
	case m.imgErr != nil:
		body = m.centered(m.theme.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconWarning, m.imgErr)), area)
	case m.lines == nil:
		body = m.centered(m.theme.Subtle.Render("Loading image..."), area)
	default:
		body = strings.Join(m.lines, "\n")
	}

	helpView := m.help.ShortHelpView(m.lbKeys.ShortHelp())
	if m.showHelp {
		helpView = m.help.FullHelpView(m.lbKeys.FullHelp())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		m.status.RenderStatus(m.lightbox.Render(), m.width),
		helpView,
	)
}

func (m GalleryModel) centered(s string, height int) string {
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, s)
}

func rectOf(r image.Rectangle) input.Rect {
	return input.Rect{
		X:      float64(r.Min.X),
		Y:      float64(r.Min.Y),
		Width:  float64(r.Dx()),
		Height: float64(r.Dy()),
	}
}

func paletteBackground(cfg *config.Config) color.RGBA {
	bg, err := raster.ParseHex(cfg.Appearance.ActivePalette().Background)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return bg
}

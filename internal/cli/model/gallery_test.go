package model

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lightbox/internal/application/port/mocks"
	"github.com/bnema/lightbox/internal/application/usecase"
	"github.com/bnema/lightbox/internal/cache/generic"
	"github.com/bnema/lightbox/internal/cli/styles"
	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/infrastructure/config"
	"github.com/bnema/lightbox/internal/infrastructure/raster"
	"github.com/bnema/lightbox/internal/ui/input"
)

var servicesGroup = &entity.Group{
	ID:    "services",
	Title: "Services",
	Images: []entity.Image{
		{URL: "removal.png", Alt: "Tree removal"},
		{URL: "stump.png", Alt: "Stump grinding"},
		{URL: "pruning.png", Alt: "Pruning"},
	},
}

type galleryFixture struct {
	model    GalleryModel
	source   *mocks.MockGallerySource
	lightbox *usecase.LightboxController
}

func newGalleryFixture(t *testing.T, cfg GalleryModelConfig) *galleryFixture {
	t.Helper()
	ctx := context.Background()

	source := mocks.NewMockGallerySource(t)
	lightbox := usecase.NewLightboxController(usecase.DefaultLightboxConfig(), nil)
	shortcuts := input.NewShortcutTable(ctx, &config.DefaultConfig().Keybindings)

	cfg.OpenUC = usecase.NewOpenGalleryUseCase(source, lightbox)
	cfg.Lightbox = lightbox
	cfg.Dispatcher = input.NewDispatcher(lightbox, shortcuts)
	cfg.Images = raster.NewStoreWithLoader(8, generic.LoaderFunc[string, image.Image](
		func(context.Context, string) (image.Image, error) {
			img := image.NewRGBA(image.Rect(0, 0, 10, 6))
			for y := 0; y < 6; y++ {
				for x := 0; x < 10; x++ {
					img.SetRGBA(x, y, color.RGBA{R: 0xff, A: 0xff})
				}
			}
			return img, nil
		}))

	theme := styles.NewTheme(config.DefaultConfig())
	m := NewGalleryModel(ctx, theme, cfg)

	f := &galleryFixture{model: m, source: source, lightbox: lightbox}
	// 20x10 cells of image area: a 20x20 pixel viewport.
	f.send(t, tea.WindowSizeMsg{Width: 20, Height: 10 + footerRows})
	return f
}

// send delivers msg and runs the resulting command chain, skipping batches.
func (f *galleryFixture) send(t *testing.T, msg tea.Msg) {
	t.Helper()
	for msg != nil {
		next, cmd := f.model.Update(msg)
		gm, ok := next.(GalleryModel)
		require.True(t, ok)
		f.model = gm

		if cmd == nil {
			return
		}
		msg = cmd()
		if _, batch := msg.(tea.BatchMsg); batch {
			return
		}
	}
}

func (f *galleryFixture) openServices(t *testing.T) {
	t.Helper()
	f.source.EXPECT().Groups(mock.Anything).Return([]*entity.Group{servicesGroup}, nil).Maybe()
	f.source.EXPECT().Group(mock.Anything, entity.GroupID("services")).Return(servicesGroup, nil)

	f.send(t, groupsLoadedMsg{groups: []*entity.Group{servicesGroup}})
	f.send(t, f.model.openGroup("services", 0)())
	require.Equal(t, stateLightbox, f.model.state)
	require.NotNil(t, f.model.frame, "image should be loaded and rendered")
}

func TestGalleryModel_StartsLoading(t *testing.T) {
	f := newGalleryFixture(t, GalleryModelConfig{})

	assert.Equal(t, stateLoading, f.model.state)
	assert.NotNil(t, f.model.Init())
}

func TestGalleryModel_GroupsLoaded(t *testing.T) {
	f := newGalleryFixture(t, GalleryModelConfig{})

	f.send(t, groupsLoadedMsg{groups: []*entity.Group{servicesGroup}})

	assert.Equal(t, stateList, f.model.state)
	assert.Len(t, f.model.list.Items(), 1)
	assert.Contains(t, f.model.View(), "Services")
}

func TestGalleryModel_GroupsLoadError(t *testing.T) {
	f := newGalleryFixture(t, GalleryModelConfig{})

	f.send(t, groupsLoadedMsg{err: errors.New("permission denied")})

	assert.Equal(t, stateList, f.model.state)
	require.Error(t, f.model.Err())
	assert.Contains(t, f.model.View(), "permission denied")
}

func TestGalleryModel_OpenGroupShowsImage(t *testing.T) {
	f := newGalleryFixture(t, GalleryModelConfig{})
	f.openServices(t)

	assert.Equal(t, "removal.png", f.model.imgURL)
	assert.Equal(t, image.Rect(5, 7, 15, 13), f.model.frame.Box)
	assert.Len(t, f.model.lines, 10)
	assert.Contains(t, f.model.View(), "1/3")
}

func TestGalleryModel_InitialGroupOpensAfterLoad(t *testing.T) {
	f := newGalleryFixture(t, GalleryModelConfig{InitialGroup: "services", InitialIndex: 2})
	f.source.EXPECT().Group(mock.Anything, entity.GroupID("services")).Return(servicesGroup, nil)

	next, cmd := f.model.Update(groupsLoadedMsg{groups: []*entity.Group{servicesGroup}})
	f.model = next.(GalleryModel)
	require.NotNil(t, cmd)
	assert.Empty(t, f.model.initialGroup, "initial group is consumed once")

	// tea.Batch collapses to the open command alone when the list has
	// nothing to run, so accept either shape.
	msgs := []tea.Msg{cmd()}
	if batch, ok := msgs[0].(tea.BatchMsg); ok {
		msgs = msgs[:0]
		for _, c := range batch {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
	}
	opened := false
	for _, msg := range msgs {
		if msg, ok := msg.(groupOpenedMsg); ok {
			opened = true
			f.send(t, msg)
		}
	}
	require.True(t, opened, "open command not issued")

	assert.Equal(t, stateLightbox, f.model.state)
	assert.Equal(t, 2, f.lightbox.Index())
}

func TestGalleryModel_KeysNavigateAndClose(t *testing.T) {
	f := newGalleryFixture(t, GalleryModelConfig{})
	f.openServices(t)

	f.send(t, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, f.lightbox.Index())
	assert.Equal(t, "stump.png", f.model.imgURL)

	f.send(t, tea.KeyMsg{Type: tea.KeyLeft})
	f.send(t, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, f.lightbox.Index(), "navigation wraps")

	f.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, f.lightbox.IsOpen())
	assert.Equal(t, stateList, f.model.state)
	assert.Nil(t, f.model.frame)
}

func TestGalleryModel_UnboundKeyIgnored(t *testing.T) {
	f := newGalleryFixture(t, GalleryModelConfig{})
	f.openServices(t)

	f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, 0, f.lightbox.Index())
	assert.True(t, f.lightbox.IsOpen())
}

func TestGalleryModel_ClickZoomsAtPoint(t *testing.T) {
	f := newGalleryFixture(t, GalleryModelConfig{})
	f.openServices(t)

	// Cell (10, 4) is pixel (10.5, 9), inside the image box (5,7)-(15,13).
	click := func(action tea.MouseAction) tea.MouseMsg {
		return tea.MouseMsg{X: 10, Y: 4, Action: action, Button: tea.MouseButtonLeft}
	}
	f.send(t, click(tea.MouseActionPress))
	f.send(t, click(tea.MouseActionRelease))

	out := f.lightbox.Render()
	assert.Equal(t, 2.0, out.Transform.Scale)
	assert.InDelta(t, 55.0, out.Transform.OriginX, 1e-9)
	assert.InDelta(t, 100.0/3, out.Transform.OriginY, 1e-9)
	assert.Greater(t, f.model.frame.Bounds.Dx(), f.model.frame.Box.Dx())
	assert.Equal(t, 12, f.model.frame.Bounds.Dy())

	f.send(t, click(tea.MouseActionPress))
	f.send(t, click(tea.MouseActionRelease))
	assert.Equal(t, 1.0, f.lightbox.Render().Transform.Scale)
}

func TestGalleryModel_BackgroundClickCloses(t *testing.T) {
	f := newGalleryFixture(t, GalleryModelConfig{})
	f.openServices(t)

	corner := func(action tea.MouseAction) tea.MouseMsg {
		return tea.MouseMsg{X: 0, Y: 0, Action: action, Button: tea.MouseButtonLeft}
	}
	f.send(t, corner(tea.MouseActionPress))
	f.send(t, corner(tea.MouseActionRelease))

	assert.False(t, f.lightbox.IsOpen())
	assert.Equal(t, stateList, f.model.state)
}

func TestGalleryModel_RightButtonIgnored(t *testing.T) {
	f := newGalleryFixture(t, GalleryModelConfig{})
	f.openServices(t)

	f.send(t, tea.MouseMsg{X: 10, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.False(t, f.model.gesture.Pressed())
}

func TestGalleryModel_ConfigReloadRebindsKeys(t *testing.T) {
	f := newGalleryFixture(t, GalleryModelConfig{})
	f.openServices(t)

	cfg := config.DefaultConfig()
	cfg.Keybindings.Next = []string{"n"}
	cfg.Appearance.ColorScheme = config.ColorSchemeLight
	f.send(t, ConfigReloadedMsg{Config: cfg})

	f.send(t, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, f.lightbox.Index(), "old binding removed")

	f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Equal(t, 1, f.lightbox.Index())

	bg, err := raster.ParseHex(cfg.Appearance.LightPalette.Background)
	require.NoError(t, err)
	assert.Equal(t, bg, f.model.background)
}

func TestGalleryModel_ImageLoadError(t *testing.T) {
	f := newGalleryFixture(t, GalleryModelConfig{})
	f.openServices(t)

	f.send(t, imageLoadedMsg{url: f.model.imgURL, err: errors.New("corrupt file")})
	assert.Contains(t, f.model.View(), "corrupt file")

	// Results for an image no longer shown are dropped.
	f.send(t, imageLoadedMsg{url: "stale.png", err: errors.New("stale")})
	assert.NotContains(t, f.model.View(), "stale")
}

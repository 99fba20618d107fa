package gallery

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newTestGallery lays out:
//
//	services/  removal.png stump-grinding.png pruning.png notes.txt
//	projects/  oak.png
//	empty/
//	.hidden/   secret.png
func newTestGallery(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writePNG(t, filepath.Join(root, "services", "removal.png"), 4, 3)
	writePNG(t, filepath.Join(root, "services", "stump-grinding.png"), 2, 2)
	writePNG(t, filepath.Join(root, "services", "pruning.png"), 8, 6)
	writeFile(t, filepath.Join(root, "services", "notes.txt"), "not an image")
	writePNG(t, filepath.Join(root, "projects", "oak.png"), 5, 5)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	writePNG(t, filepath.Join(root, ".hidden", "secret.png"), 1, 1)

	return root
}

func TestFileSource_Groups(t *testing.T) {
	root := newTestGallery(t)
	src, err := NewFileSource(root, Options{Extensions: []string{".png"}})
	require.NoError(t, err)

	groups, err := src.Groups(context.Background())
	require.NoError(t, err)

	require.Len(t, groups, 2, "empty and hidden directories are left out")
	assert.Equal(t, entity.GroupID("projects"), groups[0].ID)
	assert.Equal(t, entity.GroupID("services"), groups[1].ID)

	services := groups[1]
	assert.Equal(t, "Services", services.Title)
	require.Len(t, services.Images, 3)
	assert.Equal(t, filepath.Join(root, "services", "pruning.png"), services.Images[0].URL)
	assert.Equal(t, filepath.Join(root, "services", "removal.png"), services.Images[1].URL)
	assert.Equal(t, "Stump grinding", services.Images[2].Alt)
	assert.Equal(t, 8, services.Images[0].Width)
	assert.Equal(t, 6, services.Images[0].Height)
}

func TestFileSource_ManifestTOML(t *testing.T) {
	root := newTestGallery(t)
	writeFile(t, filepath.Join(root, "gallery.toml"), `
[groups.services]
title = "Our services"
order = 1
exclude = ["pruning.png"]

[groups.services.images."removal.png"]
alt = "Crane-assisted tree removal"

[groups.projects]
order = 2
`)

	src, err := NewFileSource(root, Options{Extensions: []string{".png"}})
	require.NoError(t, err)

	groups, err := src.Groups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	services := groups[0]
	assert.Equal(t, entity.GroupID("services"), services.ID, "manifest order wins over name")
	assert.Equal(t, "Our services", services.Title)
	require.Len(t, services.Images, 2)
	assert.Equal(t, "Crane-assisted tree removal", services.Images[0].Alt)
	assert.Equal(t, "Projects", groups[1].Title)
}

func TestFileSource_ManifestYAML(t *testing.T) {
	root := newTestGallery(t)
	writeFile(t, filepath.Join(root, "gallery.yaml"), `
groups:
  projects:
    title: Recent projects
    images:
      oak.png:
        alt: Veteran oak crown reduction
`)

	src, err := NewFileSource(root, Options{Manifest: "gallery.yaml", Extensions: []string{".png"}})
	require.NoError(t, err)

	group, err := src.Group(context.Background(), "projects")
	require.NoError(t, err)
	assert.Equal(t, "Recent projects", group.Title)
	require.Len(t, group.Images, 1)
	assert.Equal(t, "Veteran oak crown reduction", group.Images[0].Alt)
}

func TestFileSource_InvalidManifest(t *testing.T) {
	root := newTestGallery(t)
	writeFile(t, filepath.Join(root, "gallery.toml"), "[groups.services\ntitle=")

	src, err := NewFileSource(root, Options{})
	require.NoError(t, err)

	_, err = src.Groups(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidManifest)
}

func TestFileSource_Group_Errors(t *testing.T) {
	root := newTestGallery(t)
	writeFile(t, filepath.Join(root, "loose.png"), "x")
	src, err := NewFileSource(root, Options{Extensions: []string{".png"}})
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      entity.GroupID
		wantErr error
	}{
		{"missing", "gardens", ErrGroupNotFound},
		{"traversal", "../etc", ErrGroupNotFound},
		{"dot dot", "..", ErrGroupNotFound},
		{"empty id", "", ErrGroupNotFound},
		{"file not dir", "loose.png", ErrGroupNotFound},
		{"empty dir", "empty", ErrEmptyGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := src.Group(context.Background(), tt.id)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFileSource_SkipsUndecodableImages(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "mixed", "good.png"), 2, 2)
	writeFile(t, filepath.Join(root, "mixed", "broken.png"), "not png data")

	src, err := NewFileSource(root, Options{Extensions: []string{".png"}})
	require.NoError(t, err)

	group, err := src.Group(context.Background(), "mixed")
	require.NoError(t, err)
	require.Len(t, group.Images, 1)
	assert.Equal(t, "Good", group.Images[0].Alt)
}

func TestFileSource_CanceledContext(t *testing.T) {
	root := newTestGallery(t)
	src, err := NewFileSource(root, Options{Extensions: []string{".png"}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = src.Groups(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFileSource_RootMustBeDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file")
	writeFile(t, file, "x")

	_, err := NewFileSource(file, Options{})
	assert.Error(t, err)

	_, err = NewFileSource(filepath.Join(root, "missing"), Options{})
	assert.Error(t, err)
}

func TestHumanize(t *testing.T) {
	tests := map[string]string{
		"tree-removal_01": "Tree removal 01",
		"services":        "Services",
		"__x__":           "X",
		"":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, humanize(in), in)
	}
}

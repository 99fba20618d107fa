package gallery

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"unicode"

	"github.com/bnema/lightbox/internal/application/port"
	"github.com/bnema/lightbox/internal/domain/entity"
	"github.com/bnema/lightbox/internal/logging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // Register WebP decoder
	"golang.org/x/sync/errgroup"
)

// Options configures a FileSource.
type Options struct {
	// Manifest is the metadata file name inside the root.
	Manifest string
	// Extensions lists accepted image extensions, with leading dot.
	Extensions []string
}

var _ port.GallerySource = (*FileSource)(nil)

// FileSource serves gallery groups from a directory: every subdirectory of
// root is a group, and its image files, sorted by name, are the group images.
type FileSource struct {
	root         string
	manifestPath string
	extensions   map[string]bool
}

// NewFileSource creates a source rooted at root.
func NewFileSource(root string, opts Options) (*FileSource, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve gallery root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open gallery root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("gallery root %s is not a directory", abs)
	}

	manifest := opts.Manifest
	if manifest == "" {
		manifest = "gallery.toml"
	}

	exts := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		exts[strings.ToLower(ext)] = true
	}
	if len(exts) == 0 {
		for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".webp"} {
			exts[ext] = true
		}
	}

	return &FileSource{
		root:         abs,
		manifestPath: filepath.Join(abs, manifest),
		extensions:   exts,
	}, nil
}

// Root returns the absolute gallery root.
func (s *FileSource) Root() string {
	return s.root
}

// Groups scans every group directory concurrently. Empty groups are left out.
func (s *FileSource) Groups(ctx context.Context) ([]*entity.Group, error) {
	log := logging.FromContext(ctx)

	manifest, err := LoadManifest(s.manifestPath)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery root: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			ids = append(ids, entry.Name())
		}
	}

	results := make([]*entity.Group, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			group, err := s.scanGroup(gctx, id, manifest)
			if err != nil {
				return err
			}
			results[i] = group
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	groups := make([]*entity.Group, 0, len(results))
	for _, group := range results {
		if group.Len() > 0 {
			groups = append(groups, group)
		}
	}
	sortGroups(groups, manifest)

	log.Debug().Str("root", s.root).Int("groups", len(groups)).Msg("gallery scanned")
	return groups, nil
}

// Group scans a single group directory.
func (s *FileSource) Group(ctx context.Context, id entity.GroupID) (*entity.Group, error) {
	name := string(id)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}

	info, err := os.Stat(filepath.Join(s.root, name))
	if errors.Is(err, os.ErrNotExist) || (err == nil && !info.IsDir()) {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open group %q: %w", name, err)
	}

	manifest, err := LoadManifest(s.manifestPath)
	if err != nil {
		return nil, err
	}

	group, err := s.scanGroup(ctx, name, manifest)
	if err != nil {
		return nil, err
	}
	if group.Len() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyGroup, name)
	}
	return group, nil
}

func (s *FileSource) scanGroup(ctx context.Context, id string, manifest *Manifest) (*entity.Group, error) {
	log := logging.FromContext(ctx)
	meta := manifest.group(id)
	dir := filepath.Join(s.root, id)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list group %q: %w", id, err)
	}

	group := &entity.Group{
		ID:    entity.GroupID(id),
		Title: meta.Title,
	}
	if group.Title == "" {
		group.Title = humanize(id)
	}

	// os.ReadDir returns entries sorted by file name.
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entry.Name()
		if entry.IsDir() || !s.extensions[strings.ToLower(filepath.Ext(name))] || meta.excluded(name) {
			continue
		}

		path := filepath.Join(dir, name)
		img, err := readImage(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("skipping unreadable image")
			continue
		}
		if alt := meta.Images[name].Alt; alt != "" {
			img.Alt = alt
		}
		if img.Alt == "" {
			img.Alt = humanize(strings.TrimSuffix(name, filepath.Ext(name)))
		}
		group.Images = append(group.Images, img)
	}

	return group, nil
}

// readImage reads dimensions and, for JPEGs, the EXIF image description.
func readImage(path string) (entity.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return entity.Image{}, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return entity.Image{}, fmt.Errorf("decoding image config: %w", err)
	}

	img := entity.Image{URL: path, Width: cfg.Width, Height: cfg.Height}

	if _, err := f.Seek(0, 0); err != nil {
		return img, nil
	}
	// EXIF is optional; most PNG and GIF files carry none.
	if x, err := exif.Decode(f); err == nil {
		if tag, err := x.Get(exif.ImageDescription); err == nil {
			if desc, err := tag.StringVal(); err == nil {
				img.Alt = strings.TrimSpace(desc)
			}
		}
	}
	return img, nil
}

func sortGroups(groups []*entity.Group, manifest *Manifest) {
	sort.SliceStable(groups, func(i, j int) bool {
		oi := manifest.group(string(groups[i].ID)).Order
		oj := manifest.group(string(groups[j].ID)).Order
		switch {
		case oi > 0 && oj > 0 && oi != oj:
			return oi < oj
		case oi > 0 && oj <= 0:
			return true
		case oi <= 0 && oj > 0:
			return false
		default:
			return groups[i].ID < groups[j].ID
		}
	})
}

// humanize turns "tree-removal_01" into "Tree removal 01".
func humanize(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, name)
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

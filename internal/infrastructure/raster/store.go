package raster

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/bnema/lightbox/internal/cache/generic"
	"github.com/bnema/lightbox/internal/logging"
)

// Store decodes images by URL and keeps the most recent ones in memory.
type Store struct {
	cache *generic.LRUCache[string, image.Image]
}

// NewStore creates a store holding at most size decoded images.
func NewStore(size int) *Store {
	return NewStoreWithLoader(size, generic.LoaderFunc[string, image.Image](decodeFile))
}

// NewStoreWithLoader creates a store backed by a custom loader.
func NewStoreWithLoader(size int, loader generic.Loader[string, image.Image]) *Store {
	return &Store{cache: generic.NewLRUCache(size, loader)}
}

// Image returns the decoded image for url.
func (s *Store) Image(ctx context.Context, url string) (image.Image, error) {
	return s.cache.GetOrLoad(ctx, url)
}

// Prefetch decodes the given urls in the background, skipping cached ones.
// Failures are logged only.
func (s *Store) Prefetch(ctx context.Context, urls ...string) {
	log := logging.FromContext(ctx)
	for _, url := range urls {
		if _, ok := s.cache.Get(url); ok {
			continue
		}
		go func(url string) {
			if _, err := s.cache.GetOrLoad(ctx, url); err != nil {
				log.Debug().Err(err).Str("url", url).Msg("prefetch failed")
			}
		}(url)
	}
}

// Len returns the number of decoded images held.
func (s *Store) Len() int {
	return s.cache.Len()
}

func decodeFile(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	logging.FromContext(ctx).Debug().Str("file", path).Str("format", format).Msg("image decoded")
	return img, nil
}

package gallery

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Manifest carries the presentation metadata of a gallery root.
//
//	[groups.services]
//	title = "Our services"
//	order = 1
//
//	[groups.services.images."removal.jpg"]
//	alt = "Crane-assisted tree removal"
type Manifest struct {
	Groups map[string]GroupManifest `toml:"groups" yaml:"groups"`
}

// GroupManifest describes one group directory.
type GroupManifest struct {
	Title string `toml:"title" yaml:"title"`
	// Order sorts groups ascending; unordered groups come last, by name.
	Order  int                      `toml:"order" yaml:"order"`
	Images map[string]ImageManifest `toml:"images" yaml:"images"`
	// Exclude lists file names to leave out of the group.
	Exclude []string `toml:"exclude" yaml:"exclude"`
}

// ImageManifest describes one image file.
type ImageManifest struct {
	Alt string `toml:"alt" yaml:"alt"`
}

// LoadManifest reads the manifest at path. TOML is the default;
// .yaml and .yml files are decoded as YAML. A missing file yields an empty manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m := &Manifest{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, m); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidManifest, path, err)
		}
	default:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(m); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidManifest, path, err)
		}
	}
	return m, nil
}

func (m *Manifest) group(id string) GroupManifest {
	if m == nil || m.Groups == nil {
		return GroupManifest{}
	}
	return m.Groups[id]
}

func (g GroupManifest) excluded(name string) bool {
	for _, ex := range g.Exclude {
		if strings.EqualFold(ex, name) {
			return true
		}
	}
	return false
}

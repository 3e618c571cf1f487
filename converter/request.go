package converter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultQuality is used when a request does not set one
	DefaultQuality = 90

	// Transparent is the background sentinel that keeps the alpha channel
	Transparent = "transparent"

	MaxDimension = 10000
	MaxBatchSize = 100
)

// Options controls how each document is rendered. Nil fields are unset.
type Options struct {
	Width      *int    `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height     *int    `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`
	Quality    *int    `json:"quality,omitempty" yaml:"quality,omitempty" toml:"quality,omitempty"`
	Background *string `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
}

// Request is a single or batch conversion sharing one set of options
type Request struct {
	SVG       Source `json:"svg" yaml:"svg" toml:"svg"`
	OutputDir string `json:"outputDir" yaml:"outputDir" toml:"outputDir"`
	Options   `yaml:",inline"`
}

// settings are Options with defaults applied
type settings struct {
	width      int
	height     int
	quality    int
	background string
}

func (o Options) settings() settings {
	s := settings{
		quality:    DefaultQuality,
		background: Transparent,
	}
	if o.Width != nil {
		s.width = *o.Width
	}
	if o.Height != nil {
		s.height = *o.Height
	}
	if o.Quality != nil {
		s.quality = *o.Quality
	}
	if o.Background != nil {
		s.background = *o.Background
	}
	return s
}

func (s settings) resize() bool {
	return s.width > 0 || s.height > 0
}

func (s settings) transparent() bool {
	return s.background == Transparent
}

// LoadRequest reads a request from a YAML, TOML or JSON file, chosen by
// extension.
func LoadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request: %w", err)
	}

	var req Request
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &req)
	case ".toml":
		err = toml.Unmarshal(data, &req)
	case ".json":
		err = json.Unmarshal(data, &req)
	default:
		return nil, fmt.Errorf("unsupported request format %q, expected .yaml, .toml or .json", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse request %s: %w", path, err)
	}

	return &req, nil
}

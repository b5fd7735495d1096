package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"reelview/internal/domain"
)

// BuiltinSource names the compiled-in dataset
const BuiltinSource = "builtin"

var (
	// ErrInvalidCatalog is returned when a catalog file decodes but its content is unusable
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrUnsupportedFormat is returned for catalog files with an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// file is the on-disk shape shared by every format
type file struct {
	Movies []domain.Movie `toml:"movies" yaml:"movies" json:"movies"`
}

// Default returns the compiled-in dataset
func Default() domain.Catalog {
	return domain.Catalog{
		Source: BuiltinSource,
		Movies: []domain.Movie{
			{Name: "JOKER", PosterID: "image23"},
			{Name: "ADUHRA", PosterID: "images2"},
			{Name: "AARYA", PosterID: "images3"},
			{Name: "INCOGNITO", PosterID: "images4"},
			{Name: "MASTER TWIST", PosterID: "images5"},
		},
	}
}

// LoadFile reads a catalog from path. The format is chosen by extension:
// .toml, .yaml/.yml or .json.
func LoadFile(path string) (domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	movies, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("%s: %w", path, err)
	}

	return domain.Catalog{Movies: movies, Source: path}, nil
}

// Decode parses catalog data in the format named by ext
func Decode(ext string, data []byte) ([]domain.Movie, error) {
	var f file
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse toml catalog: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse yaml catalog: %w", err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse json catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := validate(f.Movies); err != nil {
		return nil, err
	}
	if f.Movies == nil {
		f.Movies = []domain.Movie{}
	}
	return f.Movies, nil
}

func validate(movies []domain.Movie) error {
	for i, m := range movies {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%w: movie %d has no name", ErrInvalidCatalog, i)
		}
	}
	return nil
}

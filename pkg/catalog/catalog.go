// Package catalog loads the module and floor size lookup injected into the
// resolvers.
//
// A catalog is a small TOML document:
//
//	default_width = 100
//
//	[modules]
//	wall = 100
//	window = 120
//
//	[floors]
//	Ground = 450
//	Floor1 = 300
//
// Module widths fall back to default_width; floor heights do not, so an
// unlisted floor stays an unknown-floor error during stacking.
package catalog

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/facadegen/pkg/errors"
	"github.com/matzehuels/facadegen/pkg/grammar"
	"github.com/matzehuels/facadegen/pkg/resolve"
)

// DefaultWidth is used when a catalog does not set default_width.
const DefaultWidth = 100

// Catalog maps module names to widths and floor names to heights.
type Catalog struct {
	DefaultWidth int            `toml:"default_width"`
	Modules      map[string]int `toml:"modules"`
	Floors       map[string]int `toml:"floors"`
}

// New returns an empty catalog with the given default width.
func New(defaultWidth int) *Catalog {
	return &Catalog{
		DefaultWidth: defaultWidth,
		Modules:      map[string]int{},
		Floors:       map[string]int{},
	}
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "catalog %s", path)
		}
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Annotate(err, "catalog %s", path)
	}
	return c, nil
}

// Parse decodes and validates catalog TOML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode catalog")
	}
	if c.DefaultWidth == 0 {
		c.DefaultWidth = DefaultWidth
	}
	if c.Modules == nil {
		c.Modules = map[string]int{}
	}
	if c.Floors == nil {
		c.Floors = map[string]int{}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks names and sizes.
func (c *Catalog) Validate() error {
	if c.DefaultWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "default_width must be positive, got %d", c.DefaultWidth)
	}
	for _, section := range []struct {
		name    string
		entries map[string]int
	}{{"modules", c.Modules}, {"floors", c.Floors}} {
		for name, size := range section.entries {
			if err := grammar.Module(name).Valid(); err != nil {
				return errors.Annotate(err, "%s", section.name)
			}
			if size <= 0 {
				return errors.New(errors.ErrCodeInvalidInput, "%s.%s must be positive, got %d", section.name, name, size)
			}
		}
	}
	return nil
}

// Widths returns the module width lookup, falling back to DefaultWidth.
func (c *Catalog) Widths() resolve.Sizer {
	return resolve.Fallback(resolve.Table(c.Modules), c.DefaultWidth)
}

// Heights returns the strict floor height lookup.
func (c *Catalog) Heights() resolve.Sizer {
	return resolve.Table(c.Floors)
}

// ModuleNames returns the declared module names, sorted.
func (c *Catalog) ModuleNames() []string {
	return sortedKeys(c.Modules)
}

// FloorNames returns the declared floor names, sorted.
func (c *Catalog) FloorNames() []string {
	return sortedKeys(c.Floors)
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

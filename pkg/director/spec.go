package director

import (
	"maps"
	"strings"

	"github.com/matzehuels/facadegen/pkg/grammar"
)

// DefaultModule fills floors a grammar does not describe.
const DefaultModule = "wall"

// SideSpec is the grammar text and wall width of one side.
type SideSpec struct {
	Grammar string `json:"grammar" toml:"grammar"`
	Width   int    `json:"width" toml:"width"`
}

// BuildingSpec describes a building before normalization.
type BuildingSpec struct {
	Sides         map[grammar.Side]SideSpec `json:"sides" toml:"sides"`
	Floors        int                       `json:"floors" toml:"floors"`
	ModuleWidth   int                       `json:"module_width,omitempty" toml:"module_width"`
	DefaultModule string                    `json:"default_module,omitempty" toml:"default_module"`
	// Order is the floor order of every side's grammar text.
	Order grammar.Order `json:"order" toml:"order"`
}

// Clone returns a copy that shares no maps with s.
func (s BuildingSpec) Clone() BuildingSpec {
	s.Sides = maps.Clone(s.Sides)
	return s
}

// Lines returns the non-blank, trimmed lines of a side's grammar.
func (s SideSpec) Lines() []string {
	var out []string
	for _, line := range strings.Split(s.Grammar, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

package grammar

import (
	"fmt"
	"strings"

	"github.com/matzehuels/facadegen/pkg/errors"
)

// Module is the name of an atomic facade element (a wall panel, a window,
// a door) or, in stacking expressions, the name of a floor.
type Module string

// Valid reports whether m can appear in grammar text.
func (m Module) Valid() error {
	return errors.ValidateModuleName(string(m))
}

// Kind tags a group as elastic or fixed.
type Kind int

const (
	// Fill groups cycle their modules to consume the remaining budget.
	Fill Kind = iota
	// Rigid groups are placed in full, Repeat times, or not at all.
	Rigid
)

// String returns the upper-case kind name.
func (k Kind) String() string {
	switch k {
	case Fill:
		return "FILL"
	case Rigid:
		return "RIGID"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Group is an ordered run of modules sharing one allocation policy.
type Group struct {
	Kind    Kind
	Modules []Module
	// Repeat is the rigid repeat count (>= 1). Zero for fill groups.
	Repeat int
	// Joined records a "-" between this group and the previous one in the
	// source text. It only affects serialization.
	Joined bool
}

// NewFill returns a fill group over modules.
func NewFill(modules ...Module) Group {
	return Group{Kind: Fill, Modules: modules}
}

// NewRigid returns a rigid group placing modules repeat times.
func NewRigid(repeat int, modules ...Module) Group {
	return Group{Kind: Rigid, Modules: modules, Repeat: repeat}
}

// Names returns the module names of the group in order.
func (g Group) Names() []string {
	out := make([]string, len(g.Modules))
	for i, m := range g.Modules {
		out[i] = string(m)
	}
	return out
}

// Facade is one grammar line: the groups of one side of one floor.
type Facade []Group

// HasFill reports whether any group of the facade is a fill group.
func (f Facade) HasFill() bool {
	for _, g := range f {
		if g.Kind == Fill {
			return true
		}
	}
	return false
}

// Side names one of the four walls of a building.
type Side string

// Canonical sides.
const (
	Front Side = "front"
	Left  Side = "left"
	Back  Side = "back"
	Right Side = "right"
)

// Sides lists the canonical sides in building JSON order.
var Sides = []Side{Front, Left, Back, Right}

// Opposite returns the geometrically opposite side.
func (s Side) Opposite() Side {
	switch s {
	case Front:
		return Back
	case Back:
		return Front
	case Left:
		return Right
	case Right:
		return Left
	default:
		return ""
	}
}

// ParseSide converts a case-insensitive side name.
func ParseSide(s string) (Side, error) {
	side := Side(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range Sides {
		if side == c {
			return side, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown side %q (must be one of: front, left, back, right)", s)
}

// Order is the floor ordering convention of a source format.
type Order int

const (
	// OrderTopDown lists the top floor first; the last entry is the ground.
	// Grammar text uses this convention.
	OrderTopDown Order = iota
	// OrderBottomUp lists the ground floor first. Building JSON uses this
	// convention.
	OrderBottomUp
)

// String returns the configuration spelling of the order.
func (o Order) String() string {
	if o == OrderBottomUp {
		return "bottom-up"
	}
	return "top-down"
}

// ParseOrder converts "top-down" or "bottom-up".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top-down", "topdown":
		return OrderTopDown, nil
	case "bottom-up", "bottomup":
		return OrderBottomUp, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown floor order %q (must be top-down or bottom-up)", s)
}

// MarshalText encodes the order for JSON and TOML.
func (o Order) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes "top-down" or "bottom-up".
func (o *Order) UnmarshalText(text []byte) error {
	v, err := ParseOrder(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Floor is one storey of a building.
type Floor struct {
	Name   string
	Height int
	Sides  map[Side]Facade
}

// Facade returns the facade of side s.
func (f Floor) Facade(s Side) (Facade, bool) {
	fc, ok := f.Sides[s]
	return fc, ok
}

// Pattern is a parsed building grammar. Floors are stored ground-first.
type Pattern struct {
	Floors []Floor
}

// Groups calls fn for every group of every facade, floors ground-first and
// sides in canonical order. Iteration stops when fn returns false.
func (p *Pattern) Groups(fn func(floor int, side Side, g Group) bool) {
	for i, fl := range p.Floors {
		for _, s := range Sides {
			for _, g := range fl.Sides[s] {
				if !fn(i, s, g) {
					return
				}
			}
		}
	}
}

// reorder returns items ground-first given their source order.
func reorder[T any](items []T, order Order) []T {
	if order != OrderTopDown {
		return items
	}
	out := make([]T, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}

package director

import (
	"slices"

	"github.com/matzehuels/facadegen/pkg/grammar"
)

// Blueprint is a resolved building: for each side, one module name list
// per floor, ground floor first. Accessors return copies.
type Blueprint struct {
	floors int
	sides  map[grammar.Side][][]string
}

// NewBlueprint builds a blueprint from side to floor to module names.
// The input is copied.
func NewBlueprint(sides map[grammar.Side][][]string) *Blueprint {
	b := &Blueprint{sides: make(map[grammar.Side][][]string, len(sides))}
	for s, floors := range sides {
		b.sides[s] = cloneFloors(floors)
		b.floors = max(b.floors, len(floors))
	}
	return b
}

// Floors returns the number of floors.
func (b *Blueprint) Floors() int { return b.floors }

// Sides returns the sides present, in canonical order.
func (b *Blueprint) Sides() []grammar.Side {
	var out []grammar.Side
	for _, s := range grammar.Sides {
		if _, ok := b.sides[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Side returns the floors of one side.
func (b *Blueprint) Side(s grammar.Side) ([][]string, bool) {
	floors, ok := b.sides[s]
	if !ok {
		return nil, false
	}
	return cloneFloors(floors), true
}

// Modules returns the modules of one floor of one side.
func (b *Blueprint) Modules(s grammar.Side, floor int) ([]string, bool) {
	floors, ok := b.sides[s]
	if !ok || floor < 0 || floor >= len(floors) {
		return nil, false
	}
	return slices.Clone(floors[floor]), true
}

// Map returns a deep copy of the whole blueprint.
func (b *Blueprint) Map() map[grammar.Side][][]string {
	out := make(map[grammar.Side][][]string, len(b.sides))
	for s, floors := range b.sides {
		out[s] = cloneFloors(floors)
	}
	return out
}

func cloneFloors(floors [][]string) [][]string {
	out := make([][]string, len(floors))
	for i, f := range floors {
		out[i] = slices.Clone(f)
	}
	return out
}

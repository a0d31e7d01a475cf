package resolve

import (
	"math"
	"strconv"

	"github.com/matzehuels/facadegen/pkg/errors"
	"github.com/matzehuels/facadegen/pkg/grammar"
)

// SizeFunc returns the size of one named item.
type SizeFunc func(name string) (int, error)

// Allocate fits groups into budget and returns the placed names in
// authored group order. It is the single allocation routine behind both
// width and stacking resolution.
func Allocate(groups []grammar.Group, budget int, size SizeFunc, opts ...Option) ([]string, error) {
	set := newSettings(opts)
	if budget < 0 {
		return nil, errors.New(errors.ErrCodeResolution, "negative budget %d", budget)
	}

	sizes := make([][]int, len(groups))
	for i, g := range groups {
		sizes[i] = make([]int, len(g.Modules))
		for j, m := range g.Modules {
			n, err := size(string(m))
			if err != nil {
				return nil, err
			}
			if n <= 0 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "size of %q must be positive, got %d", m, n)
			}
			sizes[i][j] = n
		}
	}

	rigid, count := 0, 0
	for i, g := range groups {
		if g.Kind != grammar.Rigid {
			continue
		}
		if g.Repeat < 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "group %d %s: repeat must be at least 1", i, g)
		}
		unit := 0
		for _, n := range sizes[i] {
			unit = addSat(unit, n)
		}
		rigid = addSat(rigid, mulSat(g.Repeat, unit))
		count = addSat(count, mulSat(g.Repeat, len(g.Modules)))
	}
	if rigid > budget {
		return nil, errors.New(errors.ErrCodeResolution, "rigid content needs %s but the budget is %d", formatSat(rigid), budget)
	}
	if count > set.maxPlacements {
		return nil, tooMany(set.maxPlacements)
	}

	placed := make([][]string, len(groups))
	for i, g := range groups {
		if g.Kind != grammar.Rigid || len(g.Modules) == 0 {
			continue
		}
		names := g.Names()
		out := make([]string, 0, len(names)*g.Repeat)
		for r := 0; r < g.Repeat; r++ {
			out = append(out, names...)
		}
		placed[i] = out
	}

	remaining := budget - rigid
	cursors := make([]int, len(groups))
	for {
		if err := set.ctx.Err(); err != nil {
			return nil, err
		}
		progress := false
		for i, g := range groups {
			if g.Kind != grammar.Fill || len(g.Modules) == 0 {
				continue
			}
			c := cursors[i]
			if remaining < sizes[i][c] {
				continue
			}
			if count == set.maxPlacements {
				return nil, tooMany(set.maxPlacements)
			}
			count++
			placed[i] = append(placed[i], string(g.Modules[c]))
			remaining -= sizes[i][c]
			cursors[i] = (c + 1) % len(g.Modules)
			progress = true
		}
		if !progress {
			break
		}
	}

	var out []string
	for _, p := range placed {
		out = append(out, p...)
	}
	return out, nil
}

func tooMany(limit int) error {
	return errors.New(errors.ErrCodeResolution, "resolution would place more than %d modules", limit)
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func mulSat(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}

func formatSat(n int) string {
	if n == math.MaxInt {
		return "more than the maximum size"
	}
	return strconv.Itoa(n)
}

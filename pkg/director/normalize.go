package director

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/facadegen/pkg/errors"
	"github.com/matzehuels/facadegen/pkg/grammar"
)

// Normalize validates spec and returns the copy the director resolves:
// every canonical side present, every grammar exactly Floors lines long.
func Normalize(spec BuildingSpec, logger *log.Logger) (BuildingSpec, error) {
	if logger == nil {
		logger = log.Default()
	}
	out := spec.Clone()
	if out.Sides == nil {
		out.Sides = map[grammar.Side]SideSpec{}
	}

	if out.Floors < 1 {
		return BuildingSpec{}, errors.New(errors.ErrCodeInvalidSpec, "floors must be at least 1, got %d", out.Floors)
	}
	if out.ModuleWidth < 0 {
		return BuildingSpec{}, errors.New(errors.ErrCodeInvalidSpec, "module width must be positive, got %d", out.ModuleWidth)
	}
	if out.DefaultModule == "" {
		out.DefaultModule = DefaultModule
	}
	if err := grammar.Module(out.DefaultModule).Valid(); err != nil {
		return BuildingSpec{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "default module")
	}

	for s := range out.Sides {
		if s.Opposite() == "" {
			return BuildingSpec{}, errors.New(errors.ErrCodeInvalidSpec, "unknown side %q", s)
		}
	}

	defaultLine := grammar.NewFill(grammar.Module(out.DefaultModule)).String()

	for _, s := range grammar.Sides {
		side, ok := out.Sides[s]
		if !ok {
			continue
		}
		if side.Width < 0 {
			return BuildingSpec{}, errors.New(errors.ErrCodeInvalidSpec, "side %s: width must not be negative, got %d", s, side.Width)
		}
		lines := side.Lines()
		if len(lines) > out.Floors {
			return BuildingSpec{}, errors.New(errors.ErrCodeInvalidSpec,
				"side %s: grammar has %d lines but the building has %d floors", s, len(lines), out.Floors)
		}
		if missing := out.Floors - len(lines); missing > 0 {
			logger.Info("filled missing floors with default lines", "side", s, "lines", len(lines), "added", missing)
			for range missing {
				lines = append(lines, defaultLine)
			}
		}
		side.Grammar = strings.Join(lines, "\n")
		out.Sides[s] = side
	}

	for _, s := range grammar.Sides {
		if _, ok := out.Sides[s]; ok {
			continue
		}
		anchor, ok := spec.Sides[s.Opposite()]
		if !ok {
			return BuildingSpec{}, errors.New(errors.ErrCodeInvalidSpec,
				"side %s and its opposite %s are both missing", s, s.Opposite())
		}
		logger.Info("synthesized side from its opposite", "side", s, "from", s.Opposite(), "width", anchor.Width)
		out.Sides[s] = SideSpec{
			Grammar: strings.TrimSuffix(strings.Repeat(defaultLine+"\n", out.Floors), "\n"),
			Width:   anchor.Width,
		}
	}
	return out, nil
}

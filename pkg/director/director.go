package director

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/facadegen/pkg/errors"
	"github.com/matzehuels/facadegen/pkg/grammar"
	"github.com/matzehuels/facadegen/pkg/resolve"
)

// Director resolves one building specification. It is safe for concurrent
// use; the blueprint is computed at most once.
type Director struct {
	spec   BuildingSpec
	logger *log.Logger
	sizer  resolve.Sizer
	limit  int

	once sync.Once
	bp   *Blueprint
	err  error
}

// Option configures a Director.
type Option func(*Director)

// WithLogger sets the logger for normalization and resolution messages.
func WithLogger(l *log.Logger) Option {
	return func(d *Director) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSizer replaces the uniform module width with a per-module lookup.
func WithSizer(s resolve.Sizer) Option {
	return func(d *Director) {
		d.sizer = s
	}
}

// WithMaxModules caps the modules placed on any single facade. Zero keeps
// the resolver default.
func WithMaxModules(n int) Option {
	return func(d *Director) {
		d.limit = n
	}
}

// New normalizes spec and returns a director for it. Without WithSizer the
// spec's ModuleWidth applies to every module and must be positive.
func New(spec BuildingSpec, opts ...Option) (*Director, error) {
	d := &Director{logger: log.Default()}
	for _, opt := range opts {
		opt(d)
	}

	norm, err := Normalize(spec, d.logger)
	if err != nil {
		return nil, err
	}
	if d.sizer == nil {
		if norm.ModuleWidth <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidSpec, "module width must be positive, got %d", norm.ModuleWidth)
		}
		d.sizer = resolve.Uniform(norm.ModuleWidth)
	}
	d.spec = norm
	return d, nil
}

// Normalized returns a copy of the normalized specification.
func (d *Director) Normalized() BuildingSpec {
	return d.spec.Clone()
}

// Blueprint resolves the building on first call and returns the same
// result, or the same error, on every later call.
func (d *Director) Blueprint() (*Blueprint, error) {
	d.once.Do(func() {
		start := time.Now()
		d.bp, d.err = d.build()
		if d.err != nil {
			d.logger.Debug("blueprint failed", "err", d.err)
			return
		}
		d.logger.Debug("resolved blueprint",
			"floors", d.bp.Floors(),
			"duration", time.Since(start))
	})
	return d.bp, d.err
}

// Pattern parses the normalized grammars into one multi-floor pattern,
// ground floor first.
func (d *Director) Pattern() (*grammar.Pattern, error) {
	p := &grammar.Pattern{Floors: make([]grammar.Floor, d.spec.Floors)}
	for i := range p.Floors {
		p.Floors[i] = grammar.Floor{
			Name:  fmt.Sprintf("floor-%d", i),
			Sides: make(map[grammar.Side]grammar.Facade, len(grammar.Sides)),
		}
	}

	for _, s := range grammar.Sides {
		facades, err := grammar.ParseLines(d.spec.Sides[s].Grammar, d.spec.Order)
		if err != nil {
			return nil, errors.Annotate(err, "side %s", s)
		}
		if len(facades) != d.spec.Floors {
			return nil, errors.New(errors.ErrCodeInternal, "side %s: %d facades for %d floors", s, len(facades), d.spec.Floors)
		}
		for i, f := range facades {
			p.Floors[i].Sides[s] = f
		}
	}
	return p, nil
}

func (d *Director) build() (*Blueprint, error) {
	p, err := d.Pattern()
	if err != nil {
		return nil, err
	}

	widths := make([]map[grammar.Side]int, d.spec.Floors)
	for i := range widths {
		widths[i] = make(map[grammar.Side]int, len(grammar.Sides))
		for _, s := range grammar.Sides {
			widths[i][s] = d.spec.Sides[s].Width
		}
	}

	floors, err := resolve.Pattern(p, widths, d.sizer, resolve.MaxPlacements(d.limit))
	if err != nil {
		return nil, err
	}

	sides := make(map[grammar.Side][][]string, len(grammar.Sides))
	for _, s := range grammar.Sides {
		sides[s] = make([][]string, len(floors))
		for i, f := range floors {
			sides[s][i] = f[s]
		}
	}
	return NewBlueprint(sides), nil
}

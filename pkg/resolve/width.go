package resolve

import (
	"github.com/matzehuels/facadegen/pkg/errors"
	"github.com/matzehuels/facadegen/pkg/grammar"
)

// Facade resolves one facade against a target width and returns module
// names left to right.
func Facade(f grammar.Facade, width int, sizes Sizer, opts ...Option) ([]string, error) {
	return Allocate(f, width, func(name string) (int, error) {
		w, ok := sizes.Size(name)
		if !ok {
			return 0, errors.New(errors.ErrCodeResolution, "no width known for module %q", name)
		}
		return w, nil
	}, opts...)
}

// Pattern resolves every facade of a multi-floor pattern. widths holds one
// entry per floor, ground-first like p.Floors, and each entry must give a
// width for exactly the four canonical sides.
func Pattern(p *grammar.Pattern, widths []map[grammar.Side]int, sizes Sizer, opts ...Option) ([]map[grammar.Side][]string, error) {
	if len(p.Floors) != len(widths) {
		return nil, errors.New(errors.ErrCodeResolution, "pattern has %d floors but %d width entries were given", len(p.Floors), len(widths))
	}

	out := make([]map[grammar.Side][]string, len(p.Floors))
	for i, fl := range p.Floors {
		for s := range widths[i] {
			if s.Opposite() == "" {
				return nil, errors.New(errors.ErrCodeResolution, "floor %d (%s): unexpected side %q in widths", i, fl.Name, s)
			}
		}

		out[i] = make(map[grammar.Side][]string, len(grammar.Sides))
		for _, s := range grammar.Sides {
			w, ok := widths[i][s]
			if !ok {
				return nil, errors.New(errors.ErrCodeResolution, "missing width for side %s on floor %d (%s)", s, i, fl.Name)
			}
			f, ok := fl.Facade(s)
			if !ok {
				return nil, errors.New(errors.ErrCodeResolution, "floor %d (%s) has no %s facade", i, fl.Name, s)
			}
			names, err := Facade(f, w, sizes, opts...)
			if err != nil {
				return nil, errors.Annotate(err, "floor %d (%s) %s", i, fl.Name, s)
			}
			out[i][s] = names
		}
	}
	return out, nil
}

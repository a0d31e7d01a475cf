package resolve

import (
	"strings"

	"github.com/matzehuels/facadegen/pkg/errors"
	"github.com/matzehuels/facadegen/pkg/grammar"
)

// Stack resolves a stacking expression such as "[Ground]<Floor1>[Roof]"
// against a total building height. The result lists floor names
// bottom-to-top.
func Stack(expr string, height int, heights Sizer, opts ...Option) ([]string, error) {
	groups, err := grammar.ParseFacade(strings.TrimSpace(expr))
	if err != nil {
		return nil, errors.Annotate(err, "stacking expression")
	}
	return StackGroups(groups, height, heights, opts...)
}

// StackGroups is [Stack] for an already parsed expression. Every referenced
// floor must exist in heights, whether or not it would be placed.
func StackGroups(groups []grammar.Group, height int, heights Sizer, opts ...Option) ([]string, error) {
	for _, g := range groups {
		for _, m := range g.Modules {
			if _, ok := heights.Size(string(m)); !ok {
				return nil, errors.New(errors.ErrCodeUnknownFloor, "unknown floor %q", m)
			}
		}
	}
	floors, err := Allocate(groups, height, func(name string) (int, error) {
		h, _ := heights.Size(name)
		return h, nil
	}, opts...)
	if err != nil {
		return nil, errors.Annotate(err, "stack")
	}
	return floors, nil
}

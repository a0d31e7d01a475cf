package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/matzehuels/facadegen/pkg/errors"
)

// facadeLexer has no whitespace rule: a blank inside a line is a lex error.
var facadeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Name", Pattern: `[^<>\[\]\-\s]+`},
	{Name: "Punct", Pattern: `[<>\[\]\-]`},
})

type facadeExpr struct {
	Head *groupExpr    `@@`
	Tail []*linkedExpr `@@*`
}

type linkedExpr struct {
	Joined bool       `@"-"?`
	Group  *groupExpr `@@`
}

type groupExpr struct {
	Fill  *fillExpr  `  @@`
	Rigid *rigidExpr `| @@`
}

type fillExpr struct {
	Modules []string `"<" @Name ( "-" @Name )* ">"`
}

type rigidExpr struct {
	Modules []string `"[" @Name ( "-" @Name )* "]"`
	Repeat  string   `@Name?`
}

var facadeParser = participle.MustBuild[facadeExpr](
	participle.Lexer(facadeLexer),
)

// ParseFacade parses a single grammar line into its groups.
//
// The line must not contain a newline. Surrounding whitespace is not
// trimmed; callers reading multi-line text should use [ParseLines].
func ParseFacade(line string) (Facade, error) {
	if strings.ContainsAny(line, "\r\n") {
		return nil, errors.New(errors.ErrCodeSyntax, "facade %q spans more than one line", line)
	}
	if line == "" {
		return nil, errors.New(errors.ErrCodeSyntax, "empty facade")
	}

	expr, err := facadeParser.ParseString("", line)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSyntax, err, "facade %q", line)
	}

	facade := make(Facade, 0, 1+len(expr.Tail))
	head, err := expr.Head.group(line)
	if err != nil {
		return nil, err
	}
	facade = append(facade, head)

	for _, l := range expr.Tail {
		g, err := l.Group.group(line)
		if err != nil {
			return nil, err
		}
		g.Joined = l.Joined
		facade = append(facade, g)
	}
	return facade, nil
}

func (e *groupExpr) group(line string) (Group, error) {
	if e.Fill != nil {
		return NewFill(modules(e.Fill.Modules)...), nil
	}

	repeat := 1
	if e.Rigid.Repeat != "" {
		n, err := parseRepeat(e.Rigid.Repeat)
		if err != nil {
			return Group{}, errors.Wrap(errors.ErrCodeSyntax, err, "facade %q", line)
		}
		repeat = n
	}
	return NewRigid(repeat, modules(e.Rigid.Modules)...), nil
}

func parseRepeat(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid repeat count %q after rigid group", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid repeat count %q: %w", s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("repeat count must be at least 1, got %d", n)
	}
	return n, nil
}

func modules(names []string) []Module {
	out := make([]Module, len(names))
	for i, n := range names {
		out[i] = Module(n)
	}
	return out
}

// ParseLines parses multi-line grammar text into one facade per floor,
// returned ground-first according to order. Lines are trimmed and blank
// lines are ignored.
func ParseLines(text string, order Order) ([]Facade, error) {
	var facades []Facade
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		f, err := ParseFacade(line)
		if err != nil {
			return nil, errors.Annotate(err, "line %d", i+1)
		}
		facades = append(facades, f)
	}
	if len(facades) == 0 {
		return nil, errors.New(errors.ErrCodeSyntax, "empty pattern")
	}
	return reorder(facades, order), nil
}

// Parse parses grammar text written top-down (the last line is the ground
// floor). Every floor carries the same facade on all four sides.
func Parse(text string) (*Pattern, error) {
	return ParseWithOrder(text, OrderTopDown)
}

// ParseWithOrder parses grammar text using an explicit floor order.
func ParseWithOrder(text string, order Order) (*Pattern, error) {
	facades, err := ParseLines(text, order)
	if err != nil {
		return nil, err
	}

	p := &Pattern{Floors: make([]Floor, len(facades))}
	for i, f := range facades {
		sides := make(map[Side]Facade, len(Sides))
		for _, s := range Sides {
			sides[s] = f
		}
		p.Floors[i] = Floor{Name: fmt.Sprintf("floor-%d", i), Sides: sides}
	}
	return p, nil
}

package grammar

import (
	"strconv"
	"strings"
)

// String returns the canonical text of the group.
func (g Group) String() string {
	var b strings.Builder
	g.write(&b)
	return b.String()
}

func (g Group) write(b *strings.Builder) {
	open, close := "<", ">"
	if g.Kind == Rigid {
		open, close = "[", "]"
	}
	b.WriteString(open)
	for i, m := range g.Modules {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(string(m))
	}
	b.WriteString(close)
	if g.Kind == Rigid && g.Repeat != 1 {
		b.WriteString(strconv.Itoa(g.Repeat))
	}
}

// String returns the canonical grammar line of the facade.
func (f Facade) String() string {
	var b strings.Builder
	for i, g := range f {
		if i > 0 && g.Joined {
			b.WriteByte('-')
		}
		g.write(&b)
	}
	return b.String()
}

// Serialize writes one line per floor using each floor's front facade,
// floors listed according to order and joined by "\n".
func Serialize(p *Pattern, order Order) string {
	lines := make([]string, len(p.Floors))
	for i, fl := range p.Floors {
		lines[i] = fl.Sides[Front].String()
	}
	return strings.Join(reorder(lines, order), "\n")
}

// String serializes the pattern top-down, the grammar text convention.
func (p *Pattern) String() string {
	return Serialize(p, OrderTopDown)
}

// Package sanitize reshapes free-form or generated facade text into
// something the strict grammar parser accepts.
//
// Everything here is lossy and best-effort: characters are dropped, groups
// are closed or discarded, and nothing is reported back. Callers that need
// to know whether text is well-formed must use the grammar parser or the
// validate package instead.
package sanitize

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/facadegen/pkg/grammar"
)

// FixFacadeExpression repairs every line of text:
//   - characters other than ASCII letters, digits, '_', '.', and <>[]- are
//     dropped; whitespace separates names
//   - unbalanced groups are closed at the next opener or line end
//   - empty names and empty groups are dropped
//   - bare names outside any group are wrapped in a rigid group
//   - digits right after a rigid group become its repeat; other stray
//     digits after a group are dropped
//   - blank lines are dropped
func FixFacadeExpression(text string) string {
	return render(fix(text), false)
}

// SanitizeRigidForSandbox runs [FixFacadeExpression] and then writes every
// rigid group with an explicit repeat suffix ("[A]" becomes "[A]1").
func SanitizeRigidForSandbox(text string) string {
	return render(fix(text), true)
}

func render(lines []grammar.Facade, explicitRepeat bool) string {
	out := make([]string, 0, len(lines))
	for _, f := range lines {
		var b strings.Builder
		for _, g := range f {
			b.WriteString(g.String())
			if explicitRepeat && g.Kind == grammar.Rigid && g.Repeat == 1 {
				b.WriteString("1")
			}
		}
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}

func fix(text string) []grammar.Facade {
	var lines []grammar.Facade
	for _, raw := range strings.Split(text, "\n") {
		if f := fixLine(raw); len(f) > 0 {
			lines = append(lines, f)
		}
	}
	return lines
}

// isNameRune reports whether r may appear in a module name: ASCII letters,
// digits, '_' and '.'.
func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return r == '_' || r == '.'
}

// lineFixer accumulates groups while scanning one line.
type lineFixer struct {
	groups grammar.Facade

	pending *pendingGroup
	name    strings.Builder

	// afterClose is set right after a group closes with at least one
	// module, so that a run of digits can be claimed as its repeat.
	afterClose bool
}

type pendingGroup struct {
	kind  grammar.Kind
	bare  bool
	names []grammar.Module
}

func fixLine(line string) grammar.Facade {
	var lf lineFixer
	for _, r := range line {
		switch {
		case r == '<' || r == '[':
			lf.endName()
			lf.closePending()
			lf.afterClose = false
			kind := grammar.Fill
			if r == '[' {
				kind = grammar.Rigid
			}
			lf.pending = &pendingGroup{kind: kind}
		case r == '>' || r == ']':
			lf.endName()
			if lf.pending != nil && !lf.pending.bare {
				lf.afterClose = lf.closePending()
			}
		case r == '-' || unicode.IsSpace(r):
			lf.endName()
			lf.afterClose = false
		case isNameRune(r):
			lf.name.WriteRune(r)
		}
	}
	lf.endName()
	lf.closePending()
	return lf.groups
}

// endName finishes the name being read.
func (lf *lineFixer) endName() {
	name := lf.name.String()
	lf.name.Reset()
	if name == "" {
		return
	}

	if lf.afterClose {
		lf.afterClose = false
		i := strings.IndexFunc(name, func(r rune) bool { return r < '0' || r > '9' })
		if i < 0 {
			i = len(name)
		}
		if i > 0 {
			lf.applyRepeat(name[:i])
		}
		if name = name[i:]; name == "" {
			return
		}
	}

	if lf.pending == nil {
		lf.pending = &pendingGroup{kind: grammar.Rigid, bare: true}
	}
	lf.pending.names = append(lf.pending.names, grammar.Module(name))
}

// closePending emits the open group, if any, and reports whether a group
// was emitted.
func (lf *lineFixer) closePending() bool {
	p := lf.pending
	lf.pending = nil
	if p == nil || len(p.names) == 0 {
		return false
	}
	if p.kind == grammar.Rigid {
		lf.groups = append(lf.groups, grammar.NewRigid(1, p.names...))
	} else {
		lf.groups = append(lf.groups, grammar.NewFill(p.names...))
	}
	return true
}

// applyRepeat sets the repeat of the last group if it is rigid. Digits
// after a fill group are dropped.
func (lf *lineFixer) applyRepeat(digits string) {
	last := &lf.groups[len(lf.groups)-1]
	if last.Kind != grammar.Rigid {
		return
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		n = 1
	}
	last.Repeat = n
}

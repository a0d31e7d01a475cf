package validate

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/matzehuels/facadegen/pkg/grammar"
)

// KnownModules returns a rule that warns about modules missing from names,
// once per module, suggesting the closest known name when one is near.
func KnownModules(names []string) Rule {
	known := make(map[string]bool, len(names))
	sorted := make([]string, 0, len(names))
	for _, n := range names {
		if !known[n] {
			known[n] = true
			sorted = append(sorted, n)
		}
	}
	sort.Strings(sorted)

	return func(p *grammar.Pattern) []Issue {
		var issues []Issue
		seen := make(map[grammar.Module]bool)
		p.Groups(func(floor int, side grammar.Side, g grammar.Group) bool {
			for _, m := range g.Modules {
				if known[string(m)] || seen[m] {
					continue
				}
				seen[m] = true
				msg := fmt.Sprintf("unknown module %q", m)
				if s := suggest(string(m), sorted); s != "" {
					msg += fmt.Sprintf(" (did you mean %q?)", s)
				}
				issues = append(issues, Issue{Severity: Warning, Message: msg, Floor: floor, Side: side})
			}
			return true
		})
		return issues
	}
}

// suggest returns the closest candidate within a third of the name length,
// allowing at least two edits.
func suggest(name string, candidates []string) string {
	limit := max(len(name)/3, 2)
	best, bestDist := "", limit+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

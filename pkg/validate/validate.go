// Package validate reports soft semantic problems in facade patterns.
//
// Validation never fails: syntax errors become [Error] issues and semantic
// concerns become [Warning] issues. Callers decide what to do with them.
//
//	for _, issue := range validate.Validate(text) {
//	    fmt.Println(issue)
//	}
package validate

import (
	"fmt"

	"github.com/matzehuels/facadegen/pkg/errors"
	"github.com/matzehuels/facadegen/pkg/grammar"
)

// Severity ranks an issue.
type Severity int

const (
	Warning Severity = iota
	Error
)

// String returns WARNING or ERROR.
func (s Severity) String() string {
	if s == Error {
		return "ERROR"
	}
	return "WARNING"
}

// MarshalText encodes the severity name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Global marks an issue that is not tied to a single floor.
const Global = -1

// Issue is one validation finding.
type Issue struct {
	Severity Severity     `json:"severity"`
	Message  string       `json:"message"`
	Floor    int          `json:"floor"`
	Side     grammar.Side `json:"side,omitempty"`
}

func (i Issue) String() string {
	switch {
	case i.Floor == Global:
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	case i.Side == "":
		return fmt.Sprintf("%s: floor %d: %s", i.Severity, i.Floor, i.Message)
	default:
		return fmt.Sprintf("%s: floor %d %s: %s", i.Severity, i.Floor, i.Side, i.Message)
	}
}

// Rule inspects a parsed pattern.
type Rule func(p *grammar.Pattern) []Issue

// DefaultRules run on every Validate call, in order.
var DefaultRules = []Rule{NoFillGroup}

// Validate parses text and runs DefaultRules. A parse failure is reported as
// a single Error issue.
func Validate(text string) (issues []Issue) {
	defer func() {
		if r := recover(); r != nil {
			issues = []Issue{{Severity: Error, Message: fmt.Sprintf("internal error: %v", r), Floor: Global}}
		}
	}()

	p, err := grammar.Parse(text)
	if err != nil {
		return []Issue{{Severity: Error, Message: errors.UserMessage(err), Floor: Global}}
	}
	return ValidatePattern(p, DefaultRules...)
}

// ValidatePattern runs rules against an already parsed pattern.
func ValidatePattern(p *grammar.Pattern, rules ...Rule) []Issue {
	var issues []Issue
	for _, rule := range rules {
		issues = append(issues, rule(p)...)
	}
	return issues
}

// HasErrors reports whether any issue is of Error severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == Error {
			return true
		}
	}
	return false
}

// NoFillGroup warns once when no group anywhere in the pattern is a fill
// group. Such a pattern only resolves when the width matches the rigid
// content exactly.
func NoFillGroup(p *grammar.Pattern) []Issue {
	found := false
	p.Groups(func(_ int, _ grammar.Side, g grammar.Group) bool {
		found = g.Kind == grammar.Fill
		return !found
	})
	if found {
		return nil
	}
	return []Issue{{
		Severity: Warning,
		Message:  "pattern has no fill group; it only resolves when the width equals its rigid content",
		Floor:    Global,
	}}
}

// Package cascade implements the shared pattern-cascade primitive: an ordered
// list of candidate expressions evaluated against a text scope until one
// matches. Every field extraction in the engine goes through TryExtract, so
// the first-match-wins contract lives in exactly one place.
package cascade

import (
	"regexp"
	"strings"
)

// Pattern is one candidate expression in a cascade. Patterns are declared in
// fixed priority order per field: the most specific phrasing first, looser
// fallbacks after it.
type Pattern struct {
	expr *regexp.Regexp
}

// P compiles a case-insensitive pattern. Document issuers are inconsistent
// about label casing, so this is the default.
func P(expr string) Pattern {
	return Pattern{expr: regexp.MustCompile(`(?i)` + expr)}
}

// CaseSensitive compiles a pattern matched exactly as written; identifiers
// like VIN and engine numbers need this.
func CaseSensitive(expr string) Pattern {
	return Pattern{expr: regexp.MustCompile(expr)}
}

// Groups holds the captures of a successful match.
type Groups struct {
	match []string
	names []string
}

// Get returns the n-th positional capture (1-based, as in the expression),
// or "" when the group did not participate in the match.
func (g Groups) Get(n int) string {
	if n < 0 || n >= len(g.match) {
		return ""
	}
	return g.match[n]
}

// Named returns the capture with the given name, or "".
func (g Groups) Named(name string) string {
	for i, n := range g.names {
		if n == name && i < len(g.match) {
			return g.match[i]
		}
	}
	return ""
}

// Len returns the number of captures, counting the whole match.
func (g Groups) Len() int { return len(g.match) }

// TryExtract evaluates patterns strictly in list order against scope and
// returns the captures of the first one that matches. Later patterns are
// never evaluated once one succeeds. Pure: no state, no side effects.
func TryExtract(scope string, patterns []Pattern) (Groups, bool) {
	for _, p := range patterns {
		if m := p.expr.FindStringSubmatch(scope); m != nil {
			return Groups{match: m, names: p.expr.SubexpNames()}, true
		}
	}
	return Groups{}, false
}

// First runs TryExtract and returns the first capture group, trimmed. The
// empty string means no pattern matched (or the group was empty, which the
// record layer treats the same way: absent).
func First(scope string, patterns ...Pattern) string {
	g, ok := TryExtract(scope, patterns)
	if !ok {
		return ""
	}
	return strings.TrimSpace(g.Get(1))
}

// ForEach invokes fn for every match of a single pattern in scope, in order.
// Used for table-like repeated rows where segmentation would be overkill.
func ForEach(scope string, p Pattern, fn func(Groups)) {
	for _, m := range p.expr.FindAllStringSubmatch(scope, -1) {
		fn(Groups{match: m, names: p.expr.SubexpNames()})
	}
}

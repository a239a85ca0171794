// Package extractor holds the per-document-type schema extractors. Each one
// implements Identify (a cheap whole-corpus anchor test) and Extract (the
// field-by-field build of the typed record). Shared behavior lives in free
// functions here rather than a base type: extractors compose the cascade,
// segmenter, and normalization utilities.
package extractor

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/jdutoit/policyparse/internal/cascade"
	"github.com/jdutoit/policyparse/internal/common"
	"github.com/jdutoit/policyparse/internal/corpus"
	"github.com/jdutoit/policyparse/internal/normalize"
	"github.com/jdutoit/policyparse/internal/record"
)

// Extractor is the capability set every document type implements.
type Extractor interface {
	// Identify reports whether this extractor's document type matches the
	// corpus. Implementations combine an issuer-name anchor with a
	// document-type anchor so that shared vocabulary ("Comprehensive") cannot
	// cause false positives.
	Identify(c *corpus.Corpus) bool

	// Extract builds the record. It is best-effort and non-fatal per field:
	// missing data becomes null/absent, and it only errors when the corpus
	// itself is malformed.
	Extract(c *corpus.Corpus) (*record.Envelope, error)
}

// checkCorpus is the one hard precondition shared by all extractors.
func checkCorpus(c *corpus.Corpus) error {
	if c == nil || c.PageCount() == 0 {
		return common.ErrEmptyCorpus
	}
	return nil
}

// guard isolates one section or entity instance: an unexpected fault inside
// fn leaves its fields null and extraction continues with the next one.
func guard(logger *slog.Logger, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("section extraction fault", "section", name, "panic", fmt.Sprint(r))
		}
	}()
	fn()
}

// strPtr returns nil for empty captures so absence stays absence.
func strPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// linePtr is strPtr plus multi-line collapse, for addresses and model names.
func linePtr(s string) *string {
	return strPtr(normalize.CollapseLine(s))
}

func intPtr(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// amount runs a capture through the currency normalizer.
func amount(s string) *float64 {
	return normalize.ParseAmount(s)
}

// date runs a capture through the date normalizer.
func date(s string) *string {
	return normalize.ParseDate(s)
}

// sectionScope narrows all to the text between the first match of start and
// the earliest following match of any end header. Grouped fields are extracted
// against the narrowed scope so that a label like "Phone" appearing in two
// sections cannot cross-contaminate.
func sectionScope(all string, start *regexp.Regexp, ends ...*regexp.Regexp) string {
	loc := start.FindStringIndex(all)
	if loc == nil {
		return ""
	}
	rest := all[loc[1]:]
	cut := len(rest)
	for _, end := range ends {
		if m := end.FindStringIndex(rest); m != nil && m[0] < cut {
			cut = m[0]
		}
	}
	return rest[:cut]
}

// eachTableRow walks every extracted table row in page order, handing fn the
// row's cells joined with a single space, the way the cells read left to
// right.
func eachTableRow(c *corpus.Corpus, fn func(row string)) {
	for _, n := range c.PageNumbers() {
		for _, tbl := range c.Tables(n) {
			for _, row := range tbl {
				if len(row) == 0 {
					continue
				}
				fn(strings.TrimSpace(strings.Join(row, " ")))
			}
		}
	}
}

// preview returns the first three pages truncated to 500 characters each,
// keyed "page1".."page3"; used by the generic and stub records.
func preview(c *corpus.Corpus) map[string]string {
	out := make(map[string]string)
	for _, n := range c.PageNumbers() {
		if n > 3 {
			break
		}
		text := c.Page(n)
		if strings.TrimSpace(text) == "" {
			out[fmt.Sprintf("page%d", n)] = "(empty page)"
			continue
		}
		if len(text) > 500 {
			text = text[:500] + "..."
		}
		out[fmt.Sprintf("page%d", n)] = text
	}
	return out
}

// firstFromCascade applies cascade.First and wraps the result as a nullable
// string.
func firstFromCascade(scope string, patterns ...cascade.Pattern) *string {
	return strPtr(cascade.First(scope, patterns...))
}

// Package normalize holds the pure value-normalization helpers shared by all
// extractors: currency strings to decimals, free-text dates to a canonical
// form, and whitespace cleanup. Everything here is deterministic and
// idempotent on its own output.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	spaceRun   = regexp.MustCompile(`[ \t]+`)
	newlineRun = regexp.MustCompile(`\n{2,}`)
	numericTok = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	slashDate  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	longDate   = regexp.MustCompile(`^(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})$`)
)

// ParseAmount converts an amount string like "R 3,880,016.42" or "3 880 016.42"
// to its decimal value. Currency symbols, thousands separators (comma, space,
// or dot) and surrounding noise are stripped. Returns nil, not zero, when the
// string carries no numeric content.
func ParseAmount(s string) *float64 {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return nil
	}
	cleaned = strings.ReplaceAll(cleaned, "R", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")

	// Some schedules print dots as thousands separators. Keep a final dot only
	// when it looks like a cents part; strip the rest.
	if strings.Count(cleaned, ".") > 1 {
		last := strings.LastIndex(cleaned, ".")
		if len(cleaned)-last-1 == 2 {
			cleaned = strings.ReplaceAll(cleaned[:last], ".", "") + cleaned[last:]
		} else {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	tok := numericTok.FindString(cleaned)
	if tok == "" {
		return nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil
	}
	return &f
}

// FormatAmount renders an amount the way ParseAmount reads it back, so that
// ParseAmount(FormatAmount(x)) == x.
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseDate normalizes a date to canonical DD/MM/YYYY. Accepted inputs are
// DD/MM/YYYY (the documents' fixed day-before-month convention) and the long
// form "2 March 2020" some issuers print. Invalid or partial dates yield nil
// rather than a best guess.
func ParseDate(s string) *string {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return nil
	}

	if m := slashDate.FindStringSubmatch(cleaned); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return canonicalDate(day, month, year)
	}

	if m := longDate.FindStringSubmatch(cleaned); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		t, err := time.Parse("January", normalizeMonth(m[2]))
		if err != nil {
			return nil
		}
		return canonicalDate(day, int(t.Month()), year)
	}

	return nil
}

func canonicalDate(day, month, year int) *string {
	// Round-trip through time to reject impossible dates like 31/02.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return nil
	}
	out := fmt.Sprintf("%02d/%02d/%04d", day, month, year)
	return &out
}

func normalizeMonth(m string) string {
	m = strings.ToLower(m)
	if len(m) == 0 {
		return m
	}
	full := map[string]string{
		"jan": "January", "feb": "February", "mar": "March", "apr": "April",
		"may": "May", "jun": "June", "jul": "July", "aug": "August",
		"sep": "September", "oct": "October", "nov": "November", "dec": "December",
	}
	if len(m) >= 3 {
		if v, ok := full[m[:3]]; ok && (len(m) == 3 || strings.HasPrefix(strings.ToLower(v), m)) {
			return v
		}
	}
	return strings.ToUpper(m[:1]) + m[1:]
}

// CleanText collapses the repeated spaces and blank lines that page-layout
// reconstruction introduces. Casing and punctuation are untouched.
func CleanText(s string) string {
	s = spaceRun.ReplaceAllString(s, " ")
	s = newlineRun.ReplaceAllString(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// CollapseLine flattens a possibly multi-line capture into a single line,
// used for addresses and model names that wrap across layout rows.
func CollapseLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

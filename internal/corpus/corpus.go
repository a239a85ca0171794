package corpus

import (
	"sort"
	"strings"
)

// Table is one extracted table: ordered rows of cell strings. Empty cells are
// empty strings, never absent.
type Table [][]string

// Corpus is the per-document view the extraction engine works on: page number
// -> page text, plus any tables found on each page. Page numbers start at 1
// and are contiguous. A Corpus is built once per parse request and is never
// mutated afterwards; the engine only reads it.
type Corpus struct {
	pages  map[int]string
	tables map[int][]Table
	order  []int
}

// FromPages builds a Corpus from page-number -> text. Missing numbers in the
// input are filled with empty pages so the range stays contiguous.
func FromPages(pages map[int]string) *Corpus {
	c := &Corpus{
		pages:  make(map[int]string, len(pages)),
		tables: make(map[int][]Table),
	}
	max := 0
	for n := range pages {
		if n > max {
			max = n
		}
	}
	for n := 1; n <= max; n++ {
		c.pages[n] = pages[n]
		c.order = append(c.order, n)
	}
	return c
}

// FromText builds a single-page Corpus; used by tests and the generic path.
func FromText(text string) *Corpus {
	return FromPages(map[int]string{1: text})
}

// WithTables attaches extracted tables for a page and returns the receiver,
// so construction can be chained before the corpus is handed to the engine.
func (c *Corpus) WithTables(page int, tables []Table) *Corpus {
	c.tables[page] = tables
	return c
}

// PageCount returns the number of pages.
func (c *Corpus) PageCount() int { return len(c.order) }

// Page returns the text of one page, or "" for out-of-range numbers.
func (c *Corpus) Page(n int) string { return c.pages[n] }

// Tables returns the tables extracted for one page (may be empty).
func (c *Corpus) Tables(n int) []Table { return c.tables[n] }

// PageNumbers returns the page numbers in ascending order.
func (c *Corpus) PageNumbers() []int {
	out := make([]int, len(c.order))
	copy(out, c.order)
	return out
}

// AllText returns every page joined in page order. Whole-corpus pattern scans
// need random access to earlier pages, so the full text is materialized
// rather than streamed.
func (c *Corpus) AllText() string {
	var b strings.Builder
	for i, n := range c.order {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(c.pages[n])
	}
	return b.String()
}

// PageRangeText concatenates the pages from..to inclusive, clamped to the
// corpus bounds.
func (c *Corpus) PageRangeText(from, to int) string {
	if from < 1 {
		from = 1
	}
	if to > len(c.order) {
		to = len(c.order)
	}
	var b strings.Builder
	for n := from; n <= to; n++ {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(c.pages[n])
	}
	return b.String()
}

// FindPageContaining returns the text of the first page containing all of the
// given keywords, or "" when no page does.
func (c *Corpus) FindPageContaining(keywords ...string) string {
	for _, n := range c.order {
		text := c.pages[n]
		ok := true
		for _, kw := range keywords {
			if !strings.Contains(text, kw) {
				ok = false
				break
			}
		}
		if ok {
			return text
		}
	}
	return ""
}

// PagesContaining returns the page numbers whose text contains all keywords,
// in ascending order.
func (c *Corpus) PagesContaining(keywords ...string) []int {
	var out []int
	for _, n := range c.order {
		text := c.pages[n]
		ok := true
		for _, kw := range keywords {
			if !strings.Contains(text, kw) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

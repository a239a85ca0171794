// Package segment locates repeating entity blocks (one vehicle, one building,
// one line item) inside a page range. Boundary detection is a best-effort
// heuristic over free text: a marker pattern starts a block, the block runs to
// the next marker, and pages with no marker continue the currently open block
// rather than becoming orphans.
package segment

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/jdutoit/policyparse/internal/corpus"
)

// Block is the text scope attributed to one entity instance.
type Block struct {
	// Ordinal is assigned strictly by detection order, 1-based. A declared
	// item number in the text is an attribute for the extractor to pull out,
	// never the array index.
	Ordinal  int
	FromPage int
	ToPage   int
	Marker   string // the boundary text that opened this block
	Text     string
}

// Segment scans pages from..to of c in page order, starting a new block at
// every match of boundary. Zero matches yields an empty slice, not an error.
func Segment(c *corpus.Corpus, from, to int, boundary *regexp.Regexp) []Block {
	if from < 1 {
		from = 1
	}
	if to > c.PageCount() {
		to = c.PageCount()
	}

	var blocks []Block
	open := -1 // index into blocks of the currently open block

	for page := from; page <= to; page++ {
		text := c.Page(page)
		locs := boundary.FindAllStringIndex(text, -1)

		if len(locs) == 0 {
			// Continuation page: no marker means this page belongs to the
			// block already open. Pages before the first marker are ignored.
			if open >= 0 {
				blocks[open].Text += "\n" + text
				blocks[open].ToPage = page
			}
			continue
		}

		// Text before the first marker on this page still belongs to the
		// previous block.
		if open >= 0 && locs[0][0] > 0 {
			blocks[open].Text += "\n" + text[:locs[0][0]]
			blocks[open].ToPage = page
		}

		for i, loc := range locs {
			end := len(text)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			blocks = append(blocks, Block{
				Ordinal:  len(blocks) + 1,
				FromPage: page,
				ToPage:   page,
				Marker:   strings.TrimSpace(text[loc[0]:loc[1]]),
				Text:     text[loc[0]:end],
			})
			open = len(blocks) - 1
		}
	}

	if len(blocks) > 0 {
		slog.Debug("segmented entity blocks",
			"count", len(blocks),
			"from_page", from,
			"to_page", to,
			"pattern", boundary.String(),
		)
	}
	return blocks
}

// SegmentAll runs Segment over the whole corpus.
func SegmentAll(c *corpus.Corpus, boundary *regexp.Regexp) []Block {
	return Segment(c, 1, c.PageCount(), boundary)
}

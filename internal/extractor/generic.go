package extractor

import (
	"log/slog"

	"github.com/jdutoit/policyparse/constants"
	"github.com/jdutoit/policyparse/internal/corpus"
	"github.com/jdutoit/policyparse/internal/record"
)

// Generic is the fallback when no registered extractor recognizes the
// document. It returns raw text from the first pages so the format can be
// analyzed and a specific extractor developed; it is never an error path.
type Generic struct {
	logger *slog.Logger
}

func NewGeneric(logger *slog.Logger) *Generic {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generic{logger: logger}
}

// Identify always matches; the dispatcher consults it last.
func (e *Generic) Identify(c *corpus.Corpus) bool { return true }

func (e *Generic) Extract(c *corpus.Corpus) (*record.Envelope, error) {
	if err := checkCorpus(c); err != nil {
		return nil, err
	}
	return &record.Envelope{
		Insurer: "Unknown",
		Status:  constants.ParseStatusUnrecognized,
		Fields: &record.Generic{
			PageCount: c.PageCount(),
			Preview:   preview(c),
			Message: "Document type not recognized. Returning raw text from the " +
				"first 3 pages. Check whether an extractor exists for this document type.",
		},
	}, nil
}

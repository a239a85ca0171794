package extractor

import (
	"log/slog"
	"strings"

	"github.com/jdutoit/policyparse/constants"
	"github.com/jdutoit/policyparse/internal/corpus"
	"github.com/jdutoit/policyparse/internal/record"
)

const santamInsurer = "Santam"

// Santam is a stub extractor: it detects Santam schedules so auto-detect can
// name them, but full field extraction is pending. Extract returns a
// placeholder record, never an error.
type Santam struct {
	logger *slog.Logger
}

func NewSantam(logger *slog.Logger) *Santam {
	if logger == nil {
		logger = slog.Default()
	}
	return &Santam{logger: logger}
}

func (e *Santam) Identify(c *corpus.Corpus) bool {
	all := c.AllText()
	if !strings.Contains(all, "Santam") {
		return false
	}
	return strings.Contains(all, "Policy Schedule") || strings.Contains(all, "policy schedule")
}

func (e *Santam) Extract(c *corpus.Corpus) (*record.Envelope, error) {
	if err := checkCorpus(c); err != nil {
		return nil, err
	}
	return &record.Envelope{
		Insurer: santamInsurer,
		Status:  constants.ParseStatusStub,
		Fields: &record.Stub{
			Message: "Santam extractor is currently a stub. Full implementation pending.",
			Preview: preview(c),
		},
	}, nil
}

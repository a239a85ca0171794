// Package registry holds the static catalogue of supported document types.
// It is built once at process start and read-only afterwards, so a single
// instance is safe to share across concurrent parse requests.
package registry

import (
	"log/slog"

	"github.com/jdutoit/policyparse/constants"
	"github.com/jdutoit/policyparse/internal/extractor"
)

// Entry describes one registered document type.
type Entry struct {
	ID          constants.DocumentTypeID
	Name        string
	Insurer     string
	Description string
	Status      constants.DocTypeStatus
	Extractor   extractor.Extractor
}

// Registry maps document-type identifiers to their extractors and keeps the
// auto-detection priority order.
type Registry struct {
	byID  map[constants.DocumentTypeID]Entry
	order []Entry
}

// New builds the full catalogue. Detection order is fixed: the most specific
// and most commonly seen document types first, which is how ambiguous
// documents (more than one Identify returning true) resolve deterministically.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	discovery := extractor.NewDiscovery(logger)
	hollard := extractor.NewHollard(logger)
	santam := extractor.NewSantam(logger)
	generic := extractor.NewGeneric(logger)

	entries := []Entry{
		{
			ID:          constants.DiscoveryPolicyScheduleV1,
			Name:        "Discovery Insure Policy Schedule",
			Insurer:     "Discovery Insure",
			Description: "Discovery Insure policy schedule containing vehicle, building, and contents cover details",
			Status:      constants.StatusActive,
			Extractor:   discovery,
		},
		{
			ID:          constants.DiscoveryQuoteScheduleV1,
			Name:        "Discovery Insure Quote Schedule",
			Insurer:     "Discovery Insure",
			Description: "Discovery Insure quote schedule (pre-policy)",
			Status:      constants.StatusActive,
			Extractor:   discovery,
		},
		{
			ID:          constants.HollardPrivatePortfolioV1,
			Name:        "Hollard Private Portfolio Policy Schedule",
			Insurer:     "Hollard Insurance",
			Description: "Hollard Private Portfolio schedule with motor, contents, all risks, and liability cover",
			Status:      constants.StatusActive,
			Extractor:   hollard,
		},
		{
			ID:          constants.SantamPolicyScheduleV1,
			Name:        "Santam Policy Schedule",
			Insurer:     "Santam",
			Description: "Santam insurance policy schedule",
			Status:      constants.StatusStub,
			Extractor:   santam,
		},
		{
			ID:          constants.OldMutualPolicyScheduleV1,
			Name:        "Old Mutual Policy Schedule",
			Insurer:     "Old Mutual",
			Description: "Old Mutual insurance policy schedule",
			Status:      constants.StatusStub,
			Extractor:   generic,
		},
		{
			ID:          constants.OutsurancePolicyScheduleV1,
			Name:        "OUTsurance Policy Schedule",
			Insurer:     "OUTsurance",
			Description: "OUTsurance insurance policy schedule",
			Status:      constants.StatusStub,
			Extractor:   generic,
		},
	}

	r := &Registry{byID: make(map[constants.DocumentTypeID]Entry, len(entries))}
	for _, e := range entries {
		r.byID[e.ID] = e
		r.order = append(r.order, e)
	}
	return r
}

// Lookup returns the entry for an identifier.
func (r *Registry) Lookup(id constants.DocumentTypeID) (Entry, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// InDetectionOrder returns entries in auto-detect priority order. Stub
// entries backed by the generic extractor are skipped: Generic.Identify
// always matches and would swallow every document.
func (r *Registry) InDetectionOrder() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, e := range r.order {
		if _, isGeneric := e.Extractor.(*extractor.Generic); isGeneric {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Entries returns every registered entry for listing endpoints.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.order))
	copy(out, r.order)
	return out
}

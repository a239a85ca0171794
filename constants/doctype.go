package constants

import "strings"

// DocumentTypeID identifies one supported document type. The tokens are
// opaque and stable; callers pass them on the wire, so they must never be
// renumbered.
type DocumentTypeID string

const (
	DiscoveryPolicyScheduleV1  DocumentTypeID = "d1s0-p0l1-sch3-v001"
	DiscoveryQuoteScheduleV1   DocumentTypeID = "d1s0-qu0t-sch3-v001"
	SantamPolicyScheduleV1     DocumentTypeID = "s4nt-p0l1-sch3-v001"
	OldMutualPolicyScheduleV1  DocumentTypeID = "0ldm-p0l1-sch3-v001"
	OutsurancePolicyScheduleV1 DocumentTypeID = "0uts-p0l1-sch3-v001"
	HollardPrivatePortfolioV1  DocumentTypeID = "h0ll-pr1v-p0rt-v001"

	// AutoDetect asks the dispatcher to identify the document itself.
	AutoDetect DocumentTypeID = "auto-d3t3-ct00-0000"
)

// IsAutoDetect reports whether the given identifier requests auto-detection.
// The plain "auto" alias and an empty identifier are accepted alongside the
// sentinel token.
func IsAutoDetect(id string) bool {
	switch strings.TrimSpace(strings.ToLower(id)) {
	case "", "auto", string(AutoDetect):
		return true
	}
	return false
}

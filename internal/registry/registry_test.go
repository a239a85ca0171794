package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdutoit/policyparse/constants"
)

func TestLookup(t *testing.T) {
	r := New(nil)

	e, ok := r.Lookup(constants.DiscoveryPolicyScheduleV1)
	require.True(t, ok)
	assert.Equal(t, "Discovery Insure", e.Insurer)
	assert.Equal(t, constants.StatusActive, e.Status)
	require.NotNil(t, e.Extractor)

	_, ok = r.Lookup("nope")
	assert.False(t, ok)
}

func TestEntriesListsFullCatalogue(t *testing.T) {
	entries := New(nil).Entries()
	require.Len(t, entries, 6)

	byStatus := map[constants.DocTypeStatus]int{}
	for _, e := range entries {
		byStatus[e.Status]++
	}
	assert.Equal(t, 3, byStatus[constants.StatusActive])
	assert.Equal(t, 3, byStatus[constants.StatusStub])
}

func TestDetectionOrderIsStable(t *testing.T) {
	got := New(nil).InDetectionOrder()

	var ids []constants.DocumentTypeID
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	// Generic-backed placeholders (Old Mutual, OUTsurance) are excluded:
	// their Identify matches everything and would end detection early.
	assert.Equal(t, []constants.DocumentTypeID{
		constants.DiscoveryPolicyScheduleV1,
		constants.DiscoveryQuoteScheduleV1,
		constants.HollardPrivatePortfolioV1,
		constants.SantamPolicyScheduleV1,
	}, ids)
}

package segment

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdutoit/policyparse/internal/corpus"
)

var vehicleMarker = regexp.MustCompile(`(?m)^Vehicle \d+`)

func TestSegmentContinuationPage(t *testing.T) {
	c := corpus.FromPages(map[int]string{
		1: "Schedule summary, no vehicles here",
		2: "Vehicle 1\nMake: VW\nModel: Polo",
		3: "Excess structure continued\nBasic excess: R5,000",
		4: "Vehicle 2\nMake: BMW\nModel: 320i",
	})

	blocks := Segment(c, 1, 4, vehicleMarker)
	require.Len(t, blocks, 2)

	assert.Equal(t, 1, blocks[0].Ordinal)
	assert.Equal(t, 2, blocks[0].FromPage)
	assert.Equal(t, 3, blocks[0].ToPage)
	assert.Contains(t, blocks[0].Text, "Make: VW")
	assert.Contains(t, blocks[0].Text, "Basic excess: R5,000")

	assert.Equal(t, 2, blocks[1].Ordinal)
	assert.Equal(t, 4, blocks[1].FromPage)
	assert.Equal(t, 4, blocks[1].ToPage)
	assert.Contains(t, blocks[1].Text, "Make: BMW")
	assert.NotContains(t, blocks[1].Text, "Basic excess")
}

func TestSegmentMultipleMarkersOnOnePage(t *testing.T) {
	c := corpus.FromPages(map[int]string{
		1: "Vehicle 1\nMake: VW\nVehicle 2\nMake: BMW\nVehicle 3\nMake: Audi",
	})

	blocks := SegmentAll(c, vehicleMarker)
	require.Len(t, blocks, 3)
	assert.Contains(t, blocks[0].Text, "Make: VW")
	assert.NotContains(t, blocks[0].Text, "Make: BMW")
	assert.Contains(t, blocks[1].Text, "Make: BMW")
	assert.Contains(t, blocks[2].Text, "Make: Audi")
}

func TestSegmentTextBeforeFirstMarkerJoinsPreviousBlock(t *testing.T) {
	c := corpus.FromPages(map[int]string{
		1: "Vehicle 1\nMake: VW",
		2: "Voluntary excess: R2,000\nVehicle 2\nMake: BMW",
	})

	blocks := SegmentAll(c, vehicleMarker)
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[0].Text, "Voluntary excess: R2,000")
	assert.Equal(t, 2, blocks[0].ToPage)
	assert.NotContains(t, blocks[1].Text, "Voluntary excess")
}

func TestSegmentNoMarkers(t *testing.T) {
	c := corpus.FromPages(map[int]string{1: "just a summary page"})
	assert.Empty(t, SegmentAll(c, vehicleMarker))
}

func TestSegmentOrdinalsFollowDetectionOrder(t *testing.T) {
	// The declared item numbers run backwards; ordinals must not.
	c := corpus.FromPages(map[int]string{
		1: "Vehicle 9\nMake: VW",
		2: "Vehicle 4\nMake: BMW",
	})

	blocks := SegmentAll(c, vehicleMarker)
	require.Len(t, blocks, 2)
	assert.Equal(t, 1, blocks[0].Ordinal)
	assert.Equal(t, "Vehicle 9", blocks[0].Marker)
	assert.Equal(t, 2, blocks[1].Ordinal)
	assert.Equal(t, "Vehicle 4", blocks[1].Marker)
}

func TestSegmentIgnoresPagesBeforeFirstMarker(t *testing.T) {
	c := corpus.FromPages(map[int]string{
		1: "cover letter",
		2: "premium summary",
		3: "Vehicle 1\nMake: VW",
	})

	blocks := SegmentAll(c, vehicleMarker)
	require.Len(t, blocks, 1)
	assert.NotContains(t, blocks[0].Text, "cover letter")
	assert.NotContains(t, blocks[0].Text, "premium summary")
}

package cascade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryExtractFirstMatchWins(t *testing.T) {
	scope := "Plan number: 4000638715\nPolicy number: 999999"
	patterns := []Pattern{
		P(`Plan number:\s*(\d+)`),
		P(`Policy number:\s*(\d+)`),
	}

	g, ok := TryExtract(scope, patterns)
	require.True(t, ok)
	assert.Equal(t, "4000638715", g.Get(1))
}

func TestTryExtractFallsThrough(t *testing.T) {
	scope := "Policy number: 999999"
	patterns := []Pattern{
		P(`Plan number:\s*(\d+)`),
		P(`Policy number:\s*(\d+)`),
	}

	g, ok := TryExtract(scope, patterns)
	require.True(t, ok)
	assert.Equal(t, "999999", g.Get(1))
}

func TestTryExtractNoMatch(t *testing.T) {
	_, ok := TryExtract("nothing relevant here", []Pattern{P(`Plan number:\s*(\d+)`)})
	assert.False(t, ok)
}

func TestCaseInsensitiveByDefault(t *testing.T) {
	assert.Equal(t, "519.00", First("TOTAL PREMIUM: R519.00", P(`Total Premium:\s*R?([\d.,]+)`)))
}

func TestCaseSensitivePattern(t *testing.T) {
	patterns := []Pattern{CaseSensitive(`VIN:\s*([A-Z0-9]{17})`)}

	_, ok := TryExtract("vin: aavj12azzgu123456", patterns)
	assert.False(t, ok, "lowercase identifier must not match")

	g, ok := TryExtract("VIN: AAVJ12AZZGU123456", patterns)
	require.True(t, ok)
	assert.Equal(t, "AAVJ12AZZGU123456", g.Get(1))
}

func TestNamedGroups(t *testing.T) {
	g, ok := TryExtract("2. BMW, 320i", []Pattern{P(`(?P<num>\d+)\.\s+(?P<make>[A-Z]+),\s+(?P<model>\S+)`)})
	require.True(t, ok)
	assert.Equal(t, "2", g.Named("num"))
	assert.Equal(t, "BMW", g.Named("make"))
	assert.Equal(t, "320i", g.Named("model"))
	assert.Equal(t, "", g.Named("missing"))
}

func TestFirstTrims(t *testing.T) {
	assert.Equal(t, "J du Toit", First("Insured:   J du Toit  \n", P(`Insured:\s*(.+)`)))
}

func TestForEach(t *testing.T) {
	scope := "Item 1: chair\nItem 2: table\nItem 3: lamp"
	var got []string
	ForEach(scope, P(`Item \d+:\s*(\w+)`), func(g Groups) {
		got = append(got, g.Get(1))
	})
	assert.Equal(t, []string{"chair", "table", "lamp"}, got)
}

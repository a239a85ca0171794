package extractor

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdutoit/policyparse/internal/corpus"
	"github.com/jdutoit/policyparse/internal/record"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGuardContainsFault(t *testing.T) {
	var done []string
	for _, name := range []string{"header", "payment", "adviser"} {
		name := name
		guard(discardLogger(), name, func() {
			if name == "payment" {
				var m map[string]int
				m["boom"] = 1 // nil map write
			}
			done = append(done, name)
		})
	}

	// The faulting section contributes nothing; the ones after it still run.
	assert.Equal(t, []string{"header", "adviser"}, done)
}

func TestGuardEntityIsolation(t *testing.T) {
	rec := record.NewDiscovery()
	for _, marker := range []string{"1. FORD, FIESTA", "2. ###", "3. BMW, 320I"} {
		marker := marker
		guard(discardLogger(), "vehicle", func() {
			if marker == "2. ###" {
				panic("corrupt block")
			}
			rec.MotorVehicles = append(rec.MotorVehicles, record.MotorVehicle{Make: strPtr(marker)})
		})
	}

	require.Len(t, rec.MotorVehicles, 2)
	assert.Equal(t, "1. FORD, FIESTA", *rec.MotorVehicles[0].Make)
	assert.Equal(t, "3. BMW, 320I", *rec.MotorVehicles[1].Make)
}

// A block whose marker opens a vehicle but whose body is noise must yield an
// all-null instance without disturbing what the neighbouring blocks extract.
func TestDiscoveryCorruptBlockKeepsSiblings(t *testing.T) {
	c := corpus.FromPages(map[int]string{
		1: `Discovery Insure
Plan Schedule
Plan number 4000638715`,
		2: `Motor
1. VOLKSWAGEN, POLO 1.2 TSI
Registration CA123456
Comprehensive
Total R1,234.56
VIN number AAVZZZ6RZHU123456`,
		3: `Motor continued
5. UNKNOWN, 9
%%%% ]]]] ((((
\x00\x01 garbled payload
Registration !!notaplate!!`,
		4: `Motor continued
9. BMW, 320I
Registration CY98765
Total R987.65`,
	})

	env, err := NewDiscovery(nil).Extract(c)
	require.NoError(t, err)
	rec := env.Fields.(*record.Discovery)

	require.Len(t, rec.MotorVehicles, 3)

	first := rec.MotorVehicles[0]
	require.NotNil(t, first.Registration)
	assert.Equal(t, "CA123456", *first.Registration)
	require.NotNil(t, first.Details.VINNumber)
	assert.Equal(t, "AAVZZZ6RZHU123456", *first.Details.VINNumber)
	require.NotNil(t, first.Premium)
	assert.Equal(t, 1234.56, *first.Premium)

	corrupt := rec.MotorVehicles[1]
	assert.Nil(t, corrupt.Registration)
	assert.Nil(t, corrupt.Premium)

	last := rec.MotorVehicles[2]
	require.NotNil(t, last.Registration)
	assert.Equal(t, "CY98765", *last.Registration)
	require.NotNil(t, last.Premium)
	assert.Equal(t, 987.65, *last.Premium)
}

package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAutoDetect(t *testing.T) {
	assert.True(t, IsAutoDetect(""))
	assert.True(t, IsAutoDetect("auto"))
	assert.True(t, IsAutoDetect("AUTO"))
	assert.True(t, IsAutoDetect(string(AutoDetect)))
	assert.True(t, IsAutoDetect("  auto  "))

	assert.False(t, IsAutoDetect(string(DiscoveryPolicyScheduleV1)))
	assert.False(t, IsAutoDetect("automatic"))
}

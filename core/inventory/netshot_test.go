package inventory

import (
	"testing"

	"netsync/core/netshot"

	"github.com/stretchr/testify/assert"
)

func TestFromNetshot(t *testing.T) {
	devices := []netshot.Device{
		{ID: 1, Name: "r1", MgmtAddress: netshot.Address{IP: "10.0.0.1"}},
		{ID: 2, Name: "r2", MgmtAddress: netshot.Address{IP: "10.0.0.2"}},
	}

	inv := FromNetshot(devices)
	assert.Equal(t, Inventory{"10.0.0.1": "r1", "10.0.0.2": "r2"}, inv)
	assert.True(t, inv.Contains("10.0.0.1"))
	assert.False(t, inv.Contains("10.0.0.9"))
}

func TestFromNetshot_DuplicateIPLastWriteWins(t *testing.T) {
	devices := []netshot.Device{
		{ID: 1, Name: "first", MgmtAddress: netshot.Address{IP: "10.0.0.1"}},
		{ID: 2, Name: "second", MgmtAddress: netshot.Address{IP: "10.0.0.1"}},
	}

	assert.Equal(t, Inventory{"10.0.0.1": "second"}, FromNetshot(devices))
}

func TestFromNetshot_Empty(t *testing.T) {
	assert.Empty(t, FromNetshot(nil))
}

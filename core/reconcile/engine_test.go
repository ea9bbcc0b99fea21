package reconcile

import (
	"testing"

	"netsync/core/inventory"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDiff(t *testing.T) {
	source := inventory.Inventory{
		"10.0.0.1": "r1",
		"10.0.0.2": "r2",
	}
	managed := inventory.Inventory{
		"10.0.0.2": "r2",
		"10.0.0.3": "r3",
	}

	plan := Diff(source, managed, zap.NewNop())

	assert.Equal(t, []string{"10.0.0.1"}, plan.ToRegister)
	assert.Equal(t, []string{"10.0.0.3"}, plan.ToDisable)
	assert.Equal(t, 2, plan.Summary.SourceDevices)
	assert.Equal(t, 2, plan.Summary.ManagedDevices)
	assert.Equal(t, 1, plan.Summary.Matched)
	assert.Equal(t, 1, plan.Summary.ToRegister)
	assert.Equal(t, 1, plan.Summary.ToDisable)
}

func TestDiff_OutputsAreDisjoint(t *testing.T) {
	source := inventory.Inventory{
		"10.0.0.1": "a",
		"10.0.0.2": "b",
		"10.0.0.3": "c",
	}
	managed := inventory.Inventory{
		"10.0.0.2": "b",
		"10.0.0.4": "d",
	}

	plan := Diff(source, managed, zap.NewNop())

	seen := make(map[string]struct{})
	for _, ip := range plan.ToRegister {
		seen[ip] = struct{}{}
	}
	for _, ip := range plan.ToDisable {
		_, dup := seen[ip]
		assert.False(t, dup, "ip %s classified twice", ip)
	}

	// An IP present in both inventories appears in neither output set.
	assert.NotContains(t, plan.ToRegister, "10.0.0.2")
	assert.NotContains(t, plan.ToDisable, "10.0.0.2")
}

func TestDiff_Idempotent(t *testing.T) {
	source := inventory.Inventory{"10.0.0.1": "a", "10.0.0.5": "e", "10.0.0.9": "x"}
	managed := inventory.Inventory{"10.0.0.5": "e", "10.0.0.7": "g"}

	first := Diff(source, managed, zap.NewNop())
	second := Diff(source, managed, zap.NewNop())

	assert.Equal(t, first, second)
}

func TestDiff_DoesNotMutateInputs(t *testing.T) {
	source := inventory.Inventory{"10.0.0.1": "a"}
	managed := inventory.Inventory{"10.0.0.2": "b"}

	Diff(source, managed, zap.NewNop())

	assert.Equal(t, inventory.Inventory{"10.0.0.1": "a"}, source)
	assert.Equal(t, inventory.Inventory{"10.0.0.2": "b"}, managed)
}

func TestDiff_IdenticalInventories(t *testing.T) {
	inv := inventory.Inventory{"10.0.0.1": "a", "10.0.0.2": "b"}

	plan := Diff(inv, inv, zap.NewNop())

	assert.Empty(t, plan.ToRegister)
	assert.Empty(t, plan.ToDisable)
	assert.Equal(t, 2, plan.Summary.Matched)
}

func TestDiff_EmptyInventories(t *testing.T) {
	plan := Diff(inventory.Inventory{}, inventory.Inventory{}, zap.NewNop())

	assert.Empty(t, plan.ToRegister)
	assert.Empty(t, plan.ToDisable)
	assert.Zero(t, plan.Summary.Matched)
}

func TestDiff_SortedOutput(t *testing.T) {
	source := inventory.Inventory{
		"10.0.0.9": "i",
		"10.0.0.1": "a",
		"10.0.0.5": "e",
	}

	plan := Diff(source, inventory.Inventory{}, zap.NewNop())
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.5", "10.0.0.9"}, plan.ToRegister)
}

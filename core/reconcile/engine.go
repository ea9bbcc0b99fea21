package reconcile

import (
	"sort"

	"netsync/core/inventory"

	"go.uber.org/zap"
)

// Diff computes the plan for aligning Netshot with NetBox: every NetBox IP
// unknown to Netshot is to be registered, every Netshot IP unknown to
// NetBox is to be disabled. IPs present on both sides are matched and need
// no action. The inputs are never mutated and the output slices are sorted
// so the same inventories always produce the same plan.
func Diff(source, managed inventory.Inventory, logger *zap.Logger) *Plan {
	plan := &Plan{
		ToRegister: []string{},
		ToDisable:  []string{},
	}
	plan.Summary.SourceDevices = len(source)
	plan.Summary.ManagedDevices = len(managed)

	for ip, name := range source {
		if managedName, ok := managed[ip]; ok {
			plan.Summary.Matched++
			logger.Debug("device present on both sides",
				zap.String("ip", ip),
				zap.String("name", managedName))
			continue
		}
		logger.Debug("device missing from netshot",
			zap.String("ip", ip),
			zap.String("name", name))
		plan.ToRegister = append(plan.ToRegister, ip)
	}

	for ip, name := range managed {
		if _, ok := source[ip]; ok {
			continue
		}
		logger.Debug("device missing from netbox",
			zap.String("ip", ip),
			zap.String("name", name))
		plan.ToDisable = append(plan.ToDisable, ip)
	}

	// Map iteration order is random; sort for deterministic output.
	sort.Strings(plan.ToRegister)
	sort.Strings(plan.ToDisable)

	plan.Summary.ToRegister = len(plan.ToRegister)
	plan.Summary.ToDisable = len(plan.ToDisable)
	return plan
}

package inventory

import "netsync/core/netshot"

// FromNetshot normalizes Netshot device records into the canonical
// inventory. Name and management IP are always present in the Netshot
// schema, so no filtering applies; the last record wins on duplicate IPs.
func FromNetshot(devices []netshot.Device) Inventory {
	inv := make(Inventory, len(devices))
	for _, device := range devices {
		inv[device.MgmtAddress.IP] = device.Name
	}
	return inv
}

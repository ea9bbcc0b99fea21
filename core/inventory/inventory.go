package inventory

// Inventory is the canonical, source-agnostic device mapping: bare
// management IP to display name. Keys are unique per source; normalization
// guarantees no empty IPs ever enter the map.
type Inventory map[string]string

// Contains reports whether the inventory holds a device with the given IP.
func (inv Inventory) Contains(ip string) bool {
	_, ok := inv[ip]
	return ok
}

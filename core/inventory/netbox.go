package inventory

import (
	"strconv"
	"strings"

	"netsync/core/netbox"

	"go.uber.org/zap"
)

// FromNetbox normalizes NetBox device (and virtual machine) records into the
// canonical inventory. Records without a primary IP are skipped with a
// warning; they cannot take part in an IP keyed reconciliation. The CIDR
// prefix length is stripped from the address. When two records share an IP
// the later one wins.
func FromNetbox(devices []netbox.Device, logger *zap.Logger) Inventory {
	inv := make(Inventory, len(devices))
	for _, device := range devices {
		label := netboxLabel(device)
		if device.PrimaryIP4 == nil {
			logger.Warn("device is missing its primary IP address, skipping it",
				zap.String("device", label))
			continue
		}
		ip := stripPrefix(device.PrimaryIP4.Address)
		if previous, ok := inv[ip]; ok {
			logger.Debug("duplicate primary IP, keeping the later record",
				zap.String("ip", ip),
				zap.String("replaced", previous),
				zap.String("kept", label))
		}
		inv[ip] = label
	}
	return inv
}

// netboxLabel picks the human readable identifier for a record: its name
// when set, otherwise the stringified numeric id.
func netboxLabel(device netbox.Device) string {
	if device.Name != nil && *device.Name != "" {
		return *device.Name
	}
	return strconv.FormatInt(device.ID, 10)
}

// stripPrefix turns a CIDR formatted address ("10.0.0.1/24") into a bare
// IP. Addresses without a prefix pass through unchanged, and the split
// works the same for IPv6 textual form.
func stripPrefix(address string) string {
	ip, _, _ := strings.Cut(address, "/")
	return ip
}

package netbox

// Device is the subset of a NetBox device (or virtual machine) record that
// the synchronization cares about. Both /dcim/devices and
// /virtualization/virtual-machines serialize these fields identically;
// everything else in the upstream payload is ignored.
type Device struct {
	// ID is the numeric NetBox identifier, always present.
	ID int64 `json:"id"`
	// Name is the device name. NetBox allows unnamed devices, in which
	// case the field is null.
	Name *string `json:"name"`
	// PrimaryIP4 is the primary IPv4 assignment. Null when the device has
	// no primary IP configured.
	PrimaryIP4 *IPAddress `json:"primary_ip4"`
}

// IPAddress is a nested NetBox IP assignment. Address is CIDR formatted
// (e.g. "10.0.0.1/24").
type IPAddress struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
}

// deviceList is the NetBox paginated response envelope.
type deviceList struct {
	Count    int      `json:"count"`
	Next     *string  `json:"next"`
	Previous *string  `json:"previous"`
	Results  []Device `json:"results"`
}

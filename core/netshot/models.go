package netshot

// Device is the subset of a Netshot device record that the synchronization
// cares about. Name and management address are always present in the
// Netshot schema; everything else in the payload is ignored.
type Device struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// MgmtAddress is the nested management address object.
	MgmtAddress Address `json:"mgmtAddress"`
	Status      string  `json:"status,omitempty"`
}

// Address is the nested management address of a Netshot device. IP is a
// bare address without a prefix length.
type Address struct {
	IP string `json:"ip"`
}

// newDevicePayload is the request body for device auto-discovery registration.
type newDevicePayload struct {
	AutoDiscover bool   `json:"autoDiscover"`
	IPAddress    string `json:"ipAddress"`
	DomainID     int    `json:"domainId"`
}

// editDevicePayload is the request body for disabling an existing device.
type editDevicePayload struct {
	ID      int64 `json:"id"`
	Enabled bool  `json:"enabled"`
}

// Package netshot implements the Netshot API client.
//
// Netshot is the system being corrected: the client lists its current
// device inventory and applies the two corrective actions, registering a
// device by management IP through auto-discovery and disabling a device
// that no longer exists in NetBox. Disabling requires an id lookup first
// because the Netshot edit endpoint is keyed by device id, not address.
package netshot

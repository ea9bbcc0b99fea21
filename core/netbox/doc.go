// Package netbox implements the read-only NetBox API client.
//
// NetBox is the source of truth for the synchronization: devices and
// (optionally) virtual machines are listed through its paginated REST API
// and later normalized into the IP keyed inventory. The client follows the
// standard {count, next, results} envelope until the last page.
package netbox

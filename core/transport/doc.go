// Package transport builds the HTTP clients used to reach the upstream APIs.
//
// Both the NetBox and Netshot clients share the same transport concerns:
// strict timeouts on connection setup, TLS handshake and response headers,
// an optional per-upstream HTTP(S) proxy, and an optional TLS client
// certificate (PEM pair) for mutual TLS deployments.
package transport

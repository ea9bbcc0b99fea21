// Package inventory normalizes heterogeneous upstream device records into
// the canonical IP keyed mapping used by the reconciler.
//
// Each upstream shape gets its own builder rather than a shared record
// type: NetBox records carry a nullable, CIDR formatted primary IP and a
// nullable name, while Netshot records always carry a bare management IP
// and a name. The null handling rules differ enough that unifying them
// would only blur where records get dropped.
package inventory

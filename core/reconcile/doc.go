// Package reconcile computes and applies the difference between the two
// device inventories.
//
// The flow is a strict plan/apply split:
//
//  1. Diff: a pure function over the two canonical inventories. It
//     classifies every IP into matched, to-register (NetBox only) or
//     to-disable (Netshot only), with two hash lookups per key.
//  2. Apply: walks the plan against the Netshot client. Actions are
//     independent; one failed registration or disable is logged and the
//     batch continues, so a run always attempts every classified IP
//     exactly once. There are no retries and no rollback.
//
// Check mode stops after Diff: the plan is computed and reported but
// nothing is pushed upstream.
package reconcile

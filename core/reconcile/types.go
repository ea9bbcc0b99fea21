package reconcile

// Plan contains the classified one-sided differences between the two
// inventories and aggregate counts for reporting.
type Plan struct {
	// ToRegister holds the IPs present in NetBox but unknown to Netshot.
	ToRegister []string `json:"to_register"`

	// ToDisable holds the IPs known to Netshot but absent from NetBox.
	ToDisable []string `json:"to_disable"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a reconciliation plan.
type Summary struct {
	// SourceDevices is the size of the normalized NetBox inventory.
	SourceDevices int `json:"source_devices"`

	// ManagedDevices is the size of the normalized Netshot inventory.
	ManagedDevices int `json:"managed_devices"`

	// Matched counts IPs present in both inventories.
	Matched int `json:"matched"`

	// ToRegister counts planned registrations.
	ToRegister int `json:"to_register"`

	// ToDisable counts planned disables.
	ToDisable int `json:"to_disable"`
}

// Options controls how a plan is applied.
type Options struct {
	// DryRun prevents execution of any corrective action if true.
	DryRun bool

	// DomainID is the Netshot domain passed along with every registration.
	DomainID int
}

// Result reports the outcome of applying a plan. Failures are per item and
// never abort the batch, so the result carries counts rather than an error.
type Result struct {
	// Registered counts successful device registrations.
	Registered int

	// Disabled counts successful device disables.
	Disabled int

	// Failed counts actions that were attempted and failed.
	Failed int
}

package netbox

// Config holds configuration for the NetBox API client.
type Config struct {
	// URL is the base URL of the NetBox instance (e.g. https://netbox.example.com).
	URL string `mapstructure:"url" default:""`
	// Token is the NetBox API token. Empty performs anonymous requests.
	Token string `mapstructure:"token" default:""`
	// DevicesFilter is the querystring used to select devices (e.g. "status=active&role=router").
	DevicesFilter string `mapstructure:"devices_filter" default:""`
	// VMsFilter is the querystring used to select virtual machines.
	// When empty, virtual machines are not fetched at all.
	VMsFilter string `mapstructure:"vms_filter" default:""`
	// Proxy is an optional HTTP(S) proxy URL used to reach NetBox.
	Proxy string `mapstructure:"proxy" default:""`
	// TLSCert is an optional path to a PEM client certificate.
	TLSCert string `mapstructure:"tls_cert" default:""`
	// TLSKey is an optional path to the matching PEM private key.
	TLSKey string `mapstructure:"tls_key" default:""`
	// TimeoutSeconds is the per-request transport timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

package netshot

// Config holds configuration for the Netshot API client.
type Config struct {
	// URL is the base URL of the Netshot instance (e.g. https://netshot.example.com).
	URL string `mapstructure:"url" default:""`
	// Token is the Netshot API token, required for every call.
	Token string `mapstructure:"token" default:""`
	// DomainID is the Netshot domain a newly registered device is placed in.
	DomainID int `mapstructure:"domain_id" default:"0"`
	// Proxy is an optional HTTP(S) proxy URL used to reach Netshot.
	Proxy string `mapstructure:"proxy" default:""`
	// TLSCert is an optional path to a PEM client certificate.
	TLSCert string `mapstructure:"tls_cert" default:""`
	// TLSKey is an optional path to the matching PEM private key.
	TLSKey string `mapstructure:"tls_key" default:""`
	// TimeoutSeconds is the per-request transport timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

package transport

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Options describes how to build an HTTP client for one upstream API.
type Options struct {
	// Proxy is an optional HTTP(S) proxy URL. Empty means the environment
	// proxy settings apply.
	Proxy string
	// ClientCert and ClientKey are optional paths to a PEM encoded TLS
	// client certificate pair used to authenticate to the upstream.
	ClientCert string
	ClientKey  string
	// TimeoutSeconds bounds connection setup, TLS handshake and the wait
	// for the first response byte. Defaults to 30 when unset.
	TimeoutSeconds int
}

// NewHTTPClient creates an *http.Client with strict transport timeouts and
// the optional proxy and TLS client certificate from the options.
func NewHTTPClient(opts Options) (*http.Client, error) {
	timeout := opts.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration, // Wait for first response byte timeout
	}

	if opts.Proxy != "" {
		proxyURL, err := url.Parse(opts.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url %q: %w", opts.Proxy, err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	if opts.ClientCert != "" || opts.ClientKey != "" {
		if opts.ClientCert == "" || opts.ClientKey == "" {
			return nil, fmt.Errorf("tls client certificate requires both cert and key paths")
		}
		cert, err := tls.LoadX509KeyPair(opts.ClientCert, opts.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load tls client certificate: %w", err)
		}
		transport.TLSClientConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}

	return &http.Client{Transport: transport}, nil
}

package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHTTPClient_Defaults(t *testing.T) {
	client, err := NewHTTPClient(Options{})
	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.NotNil(t, client.Transport)
}

func TestNewHTTPClient_InvalidProxy(t *testing.T) {
	_, err := NewHTTPClient(Options{Proxy: "http://proxy:port-is-not-a-number"})
	assert.Error(t, err)
}

func TestNewHTTPClient_IncompleteCertPair(t *testing.T) {
	_, err := NewHTTPClient(Options{ClientCert: "client.pem"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "both cert and key")
}

func TestNewHTTPClient_MissingCertFiles(t *testing.T) {
	_, err := NewHTTPClient(Options{ClientCert: "does-not-exist.pem", ClientKey: "does-not-exist.key"})
	assert.Error(t, err)
}

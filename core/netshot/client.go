package netshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"netsync/core/transport"

	"go.uber.org/zap"
)

// Client defines the operations netsync needs from Netshot.
type Client interface {
	// Ping verifies that the API is reachable and the token is accepted.
	Ping(ctx context.Context) error
	// Devices lists all devices known to Netshot.
	Devices(ctx context.Context) ([]Device, error)
	// RegisterDevice asks Netshot to discover and register a device by IP
	// within the given domain.
	RegisterDevice(ctx context.Context, ip string, domainID int) error
	// DisableDevice marks the device with the given management IP as disabled.
	DisableDevice(ctx context.Context, ip string) error
}

type client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a Netshot API client from the configuration.
func NewClient(cfg Config, logger *zap.Logger) (Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("netshot url not configured")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("netshot token not configured")
	}
	httpClient, err := transport.NewHTTPClient(transport.Options{
		Proxy:          cfg.Proxy,
		ClientCert:     cfg.TLSCert,
		ClientKey:      cfg.TLSKey,
		TimeoutSeconds: cfg.TimeoutSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build netshot http client: %w", err)
	}
	return &client{
		cfg:        cfg,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.URL), "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (c *client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/api/user", nil)
	if err != nil {
		return fmt.Errorf("netshot ping failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("netshot ping failed: %s", resp.Status)
	}
	c.logger.Debug("netshot reachable", zap.String("url", c.baseURL))
	return nil
}

func (c *client) Devices(ctx context.Context) ([]Device, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/devices", nil)
	if err != nil {
		return nil, fmt.Errorf("netshot request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("netshot listing failed: %s: %s", resp.Status, string(body))
	}
	var devices []Device
	if err := json.NewDecoder(resp.Body).Decode(&devices); err != nil {
		return nil, fmt.Errorf("netshot response decode failed: %w", err)
	}
	c.logger.Debug("netshot listing complete", zap.Int("records", len(devices)))
	return devices, nil
}

func (c *client) RegisterDevice(ctx context.Context, ip string, domainID int) error {
	payload := newDevicePayload{
		AutoDiscover: true,
		IPAddress:    ip,
		DomainID:     domainID,
	}
	resp, err := c.do(ctx, http.MethodPost, "/api/devices", payload)
	if err != nil {
		return fmt.Errorf("netshot registration request failed for %s: %w", ip, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("netshot registration failed for %s: %s: %s", ip, resp.Status, string(body))
	}
	return nil
}

func (c *client) DisableDevice(ctx context.Context, ip string) error {
	device, err := c.findByIP(ctx, ip)
	if err != nil {
		return err
	}
	payload := editDevicePayload{ID: device.ID, Enabled: false}
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/devices/%d", device.ID), payload)
	if err != nil {
		return fmt.Errorf("netshot disable request failed for %s: %w", ip, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("netshot disable failed for %s: %s: %s", ip, resp.Status, string(body))
	}
	return nil
}

// findByIP resolves the Netshot device id for a management IP. The edit
// endpoint is keyed by id, not address, so disabling needs this lookup.
func (c *client) findByIP(ctx context.Context, ip string) (*Device, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/devices?ip="+url.QueryEscape(ip), nil)
	if err != nil {
		return nil, fmt.Errorf("netshot lookup failed for %s: %w", ip, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("netshot lookup failed for %s: %s", ip, resp.Status)
	}
	var devices []Device
	if err := json.NewDecoder(resp.Body).Decode(&devices); err != nil {
		return nil, fmt.Errorf("netshot lookup decode failed for %s: %w", ip, err)
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("no netshot device found with ip %s", ip)
	}
	return &devices[0], nil
}

func (c *client) do(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Netshot-API-Token", c.cfg.Token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.httpClient.Do(req)
}

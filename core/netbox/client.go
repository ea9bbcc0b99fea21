package netbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"netsync/core/transport"

	"go.uber.org/zap"
)

// pageSize is the number of records requested per paginated call.
const pageSize = 100

// Client defines the read operations netsync needs from NetBox.
type Client interface {
	// Ping verifies that the API is reachable and the token is accepted.
	Ping(ctx context.Context) error
	// Devices lists devices matching the query filter, following pagination.
	Devices(ctx context.Context, filter string) ([]Device, error)
	// VirtualMachines lists virtual machines matching the query filter.
	VirtualMachines(ctx context.Context, filter string) ([]Device, error)
}

type client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a NetBox API client from the configuration.
func NewClient(cfg Config, logger *zap.Logger) (Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("netbox url not configured")
	}
	httpClient, err := transport.NewHTTPClient(transport.Options{
		Proxy:          cfg.Proxy,
		ClientCert:     cfg.TLSCert,
		ClientKey:      cfg.TLSKey,
		TimeoutSeconds: cfg.TimeoutSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build netbox http client: %w", err)
	}
	return &client{
		cfg:        cfg,
		baseURL:    sanitizeBaseURL(cfg.URL),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (c *client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, c.baseURL+"/api/status/")
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("netbox ping failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("netbox ping failed: %s", resp.Status)
	}
	c.logger.Debug("netbox reachable", zap.String("url", c.baseURL))
	return nil
}

func (c *client) Devices(ctx context.Context, filter string) ([]Device, error) {
	return c.listAll(ctx, "/api/dcim/devices/", filter)
}

func (c *client) VirtualMachines(ctx context.Context, filter string) ([]Device, error) {
	return c.listAll(ctx, "/api/virtualization/virtual-machines/", filter)
}

// listAll walks the paginated endpoint until the envelope reports no next page.
func (c *client) listAll(ctx context.Context, path, filter string) ([]Device, error) {
	var devices []Device
	url := fmt.Sprintf("%s%s?limit=%d", c.baseURL, path, pageSize)
	if filter != "" {
		url += "&" + filter
	}

	for url != "" {
		page, err := c.fetchPage(ctx, url)
		if err != nil {
			return nil, err
		}
		devices = append(devices, page.Results...)
		if page.Next != nil {
			url = *page.Next
		} else {
			url = ""
		}
	}

	c.logger.Debug("netbox listing complete",
		zap.String("path", path),
		zap.Int("records", len(devices)))
	return devices, nil
}

func (c *client) fetchPage(ctx context.Context, url string) (*deviceList, error) {
	req, err := c.newRequest(ctx, url)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("netbox request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("netbox listing failed: %s: %s", resp.Status, string(body))
	}
	var page deviceList
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("netbox response decode failed: %w", err)
	}
	return &page, nil
}

func (c *client) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Token "+c.cfg.Token)
	}
	return req, nil
}

func sanitizeBaseURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	return strings.TrimRight(trimmed, "/")
}

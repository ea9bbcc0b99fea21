package mocks

import (
	"context"

	"netsync/core/netshot"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of netshot.Client
type Client struct {
	mock.Mock
}

func (m *Client) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Client) Devices(ctx context.Context) ([]netshot.Device, error) {
	args := m.Called(ctx)
	if devices, ok := args.Get(0).([]netshot.Device); ok {
		return devices, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) RegisterDevice(ctx context.Context, ip string, domainID int) error {
	args := m.Called(ctx, ip, domainID)
	return args.Error(0)
}

func (m *Client) DisableDevice(ctx context.Context, ip string) error {
	args := m.Called(ctx, ip)
	return args.Error(0)
}

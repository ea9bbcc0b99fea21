package mocks

import (
	"context"

	"netsync/core/netbox"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of netbox.Client
type Client struct {
	mock.Mock
}

func (m *Client) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Client) Devices(ctx context.Context, filter string) ([]netbox.Device, error) {
	args := m.Called(ctx, filter)
	if devices, ok := args.Get(0).([]netbox.Device); ok {
		return devices, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) VirtualMachines(ctx context.Context, filter string) ([]netbox.Device, error) {
	args := m.Called(ctx, filter)
	if devices, ok := args.Get(0).([]netbox.Device); ok {
		return devices, args.Error(1)
	}
	return nil, args.Error(1)
}

package config_test

import (
	"testing"

	"netsync/core/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "", cfg.Netbox.URL)
	assert.Equal(t, 30, cfg.Netbox.TimeoutSeconds)
	assert.Equal(t, 0, cfg.Netshot.DomainID)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("NETBOX_URL", "https://netbox.example.com")
	t.Setenv("NETBOX_DEVICES_FILTER", "status=active")
	t.Setenv("NETSHOT_URL", "https://netshot.example.com")
	t.Setenv("NETSHOT_TOKEN", "secret")
	t.Setenv("NETSHOT_DOMAIN_ID", "4")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "https://netbox.example.com", cfg.Netbox.URL)
	assert.Equal(t, "status=active", cfg.Netbox.DevicesFilter)
	assert.Equal(t, "https://netshot.example.com", cfg.Netshot.URL)
	assert.Equal(t, "secret", cfg.Netshot.Token)
	assert.Equal(t, 4, cfg.Netshot.DomainID)
	assert.Equal(t, "debug", cfg.Log.Level)
}

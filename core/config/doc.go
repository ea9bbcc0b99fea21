// Package config provides configuration management for netsync.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Netbox: API URL, token, device/VM filters, proxy, TLS client certificate
//   - Netshot: API URL, token, domain id, proxy, TLS client certificate
//   - Log: Logging level and format
//
// Environment variables map onto nested keys by section prefix, e.g.
// NETBOX_URL -> netbox.url and NETSHOT_DOMAIN_ID -> netshot.domain_id.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Netbox.URL)
package config

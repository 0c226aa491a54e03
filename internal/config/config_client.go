package config

import (
	"time"
)

// ClientConfig is the configuration container for the command-line API
// client. It is populated from environment variables merged over built-in
// defaults.
type ClientConfig struct {
	// Adapter holds the address and timeout used to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`
}

// Adapter holds configuration for the HTTP client adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the go-member-gate server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig loads and validates the client configuration from
// environment variables, falling back to built-in defaults for unset
// fields.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	if envCfg.Adapter.HTTPAddress != "" {
		cfg.Adapter.HTTPAddress = envCfg.Adapter.HTTPAddress
	}
	if envCfg.Adapter.RequestTimeout != 0 {
		cfg.Adapter.RequestTimeout = envCfg.Adapter.RequestTimeout
	}

	return cfg, cfg.validate()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is shown in the terminal client header.
	Version string
}

// ClientAdapter holds the settings of the remote document gateway.
type ClientAdapter struct {
	// HTTPAddress is the base address of the document service.
	HTTPAddress string
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration
	// ServicePath is the service root below HTTPAddress.
	ServicePath string
	// EntitySet is the document collection name.
	EntitySet string
	// ActionNamespace qualifies the Edit and Activate actions.
	ActionNamespace string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the gateway address, timeout and resource names.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			ServicePath:     cfg.Adapter.ServicePath,
			EntitySet:       cfg.Adapter.EntitySet,
			ActionNamespace: cfg.Adapter.ActionNamespace,
		},
	}

	return clientCfg, clientCfg.validate()
}

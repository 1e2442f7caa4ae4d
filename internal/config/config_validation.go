// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

var supportedDrivers = map[string]bool{
	"sqlite3": true,
	"pgx":     true,
}

// validate checks invariants shared by every view of the merged config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.Driver != "" && !supportedDrivers[cfg.Storage.DB.Driver] {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Adapter.ServicePath != "" && !strings.HasPrefix(cfg.Adapter.ServicePath, "/") {
		return fmt.Errorf("%w: service path must start with '/'", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.EntitySet == "" {
		return fmt.Errorf("%w: empty entity set", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTP.HTTPAddress == "" || cfg.HTTP.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.HTTP.EntitySet == "" || !strings.HasPrefix(cfg.HTTP.ServicePath, "/") {
		return fmt.Errorf("%w: service path and entity set are required", ErrInvalidServerConfigs)
	}

	if cfg.DB.DSN == "" || !supportedDrivers[cfg.DB.Driver] {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.DraftTTL <= 0 || cfg.Workers.JanitorInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

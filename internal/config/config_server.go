// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerHTTP holds the listener and resource naming of the document service.
type ServerHTTP struct {
	HTTPAddress     string
	RequestTimeout  time.Duration
	ServicePath     string
	EntitySet       string
	ActionNamespace string
}

// ServerDB selects the database driver and DSN.
type ServerDB struct {
	Driver string
	DSN    string
}

// ServerWorkers configures the draft janitor.
type ServerWorkers struct {
	DraftTTL        time.Duration
	JanitorInterval time.Duration
}

// ServerConfig is the document service configuration view.
type ServerConfig struct {
	Version string
	HTTP    ServerHTTP
	DB      ServerDB
	Workers ServerWorkers
}

// GetServerConfig builds and validates the document service config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Version: cfg.App.Version,
		HTTP: ServerHTTP{
			HTTPAddress:     cfg.Server.HTTPAddress,
			RequestTimeout:  cfg.Server.RequestTimeout,
			ServicePath:     cfg.Adapter.ServicePath,
			EntitySet:       cfg.Adapter.EntitySet,
			ActionNamespace: cfg.Adapter.ActionNamespace,
		},
		DB: ServerDB{
			Driver: cfg.Storage.DB.Driver,
			DSN:    cfg.Storage.DB.DSN,
		},
		Workers: ServerWorkers{
			DraftTTL:        cfg.Workers.DraftTTL,
			JanitorInterval: cfg.Workers.JanitorInterval,
		},
	}

	return serverCfg, serverCfg.validate()
}

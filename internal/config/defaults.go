// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultServicePath     = "/odata/v4/students"
	DefaultEntitySet       = "Students"
	DefaultActionNamespace = "StudentService"
	DefaultDBDriver        = "sqlite3"
	DefaultDSN             = "file:drafts.db?_foreign_keys=on"
	DefaultDraftTTL        = 24 * time.Hour
	DefaultJanitorInterval = 10 * time.Minute
)

// defaults returns the configuration used for every field no other source set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{Driver: DefaultDBDriver, DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ServicePath:     DefaultServicePath,
			EntitySet:       DefaultEntitySet,
			ActionNamespace: DefaultActionNamespace,
		},
		Workers: Workers{
			DraftTTL:        DefaultDraftTTL,
			JanitorInterval: DefaultJanitorInterval,
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// layer is one configuration source. Layers added first take precedence.
type layer struct {
	source string
	cfg    *StructuredConfig
}

type configBuilder struct {
	layers []layer
	errs   []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]layer, 0, 4),
	}
}

// add loads one layer. A failing source is recorded and skipped so that
// build reports every broken source at once.
func (b *configBuilder) add(source string, load func() (*StructuredConfig, error)) *configBuilder {
	cfg, err := load()
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", source, err))
		return b
	}

	b.layers = append(b.layers, layer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.source, err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add("env", func() (*StructuredConfig, error) {
		cfg := &StructuredConfig{}
		return cfg, parseEnv(cfg)
	})
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.withArgs(os.Args[1:])
}

func (b *configBuilder) withArgs(args []string) *configBuilder {
	return b.add("flags", func() (*StructuredConfig, error) {
		return parseFlags(args)
	})
}

// withJSON loads the file named by the last layer that sets a path.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, l := range b.layers {
		if l.cfg.JSONFilePath != "" {
			jsonPath = l.cfg.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	return b.add("json "+jsonPath, func() (*StructuredConfig, error) {
		return parseJSON(jsonPath)
	})
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", func() (*StructuredConfig, error) {
		return defaults(), nil
	})
}

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Layer names, in precedence order.
const (
	sourceEnv      = "env"
	sourceFlags    = "flags"
	sourceJSON     = "json"
	sourceDefaults = "defaults"
)

type configLayer struct {
	source string
	cfg    *StructuredConfig
}

// configBuilder collects configuration layers. A layer added earlier wins:
// mergo only fills fields that are still zero in the destination.
type configBuilder struct {
	layers []configLayer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]configLayer, 0, 4),
	}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	b.layers = append(b.layers, configLayer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
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
	cfg, err := parseEnv()
	return b.add(sourceEnv, cfg, err)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := parseFlags(args)
	return b.add(sourceFlags, cfg, err)
}

// withJSON loads the file named by the first layer that sets a path, so
// CONFIG in the environment beats -c on the command line.
func (b *configBuilder) withJSON() *configBuilder {
	for _, l := range b.layers {
		if l.cfg.JSONFilePath == "" {
			continue
		}
		cfg, err := parseJSON(l.cfg.JSONFilePath)
		return b.add(sourceJSON, cfg, err)
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(sourceDefaults, Defaults(), nil)
}

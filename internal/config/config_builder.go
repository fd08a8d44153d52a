package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder collects partial configurations in priority order. Sources
// that fail are recorded in err and skipped; build reports them all at once.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// fail records err under the name of the source that produced it.
func (b *configBuilder) fail(source string, err error) *configBuilder {
	b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
	return b
}

func (b *configBuilder) add(cfg *StructuredConfig) *configBuilder {
	b.configs = append(b.configs, cfg)
	return b
}

// build merges the collected sources so that the first one to set a field
// wins, then validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("reading config sources: %w", b.err)
	}

	merged := &StructuredConfig{}
	for i, src := range b.configs {
		if err := mergo.Merge(merged, src); err != nil {
			return nil, fmt.Errorf("merging config source #%d: %w", i, err)
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}

	return merged, nil
}

// withDotEnv loads the dotenv file named by ENV_FILE into the process
// environment, so it has to run before withEnv.
func (b *configBuilder) withDotEnv() *configBuilder {
	if err := loadDotEnv(os.Getenv("ENV_FILE")); err != nil {
		return b.fail("dotenv", err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		return b.fail("env", err)
	}
	return b.add(cfg)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := parseFlags(args)
	if err != nil {
		return b.fail("flags", err)
	}
	return b.add(cfg)
}

// withJSON reads the JSON file named by the highest-priority source that
// sets JSONFilePath. Nothing is added when no source names one.
func (b *configBuilder) withJSON() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
			break
		}
	}
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	if err != nil {
		return b.fail("json", err)
	}
	return b.add(cfg)
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaultConfig())
}

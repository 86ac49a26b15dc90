package format

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config selects how a Registry binds its provider.
type Config struct {
	// Provider names the registered provider to bind. Empty means bind the
	// only registered provider, if there is exactly one.
	Provider string `yaml:"provider"`
}

// LoadConfig decodes a YAML Config from r. Unknown keys are rejected.
// Logging is configured on the logger passed to WithLogger, not here.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode format config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML Config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}

// Option configures a Registry.
type Option func(*Registry)

// WithConfig applies cfg to the registry.
func WithConfig(cfg Config) Option {
	return func(r *Registry) {
		r.cfg = cfg
	}
}

// WithProvider is shorthand for selecting a provider by name.
func WithProvider(name string) Option {
	return func(r *Registry) {
		r.cfg.Provider = name
	}
}

// WithLogger sets the registry's logger. Default: logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRegisterer registers the registry's lookup counter with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Registry) {
		r.registerer = reg
	}
}

package pcpptcconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultEnvPrefix = "PCPPTC_"
	configEnvVar     = "PCPPTC_CONFIG_PATH"
)

// Loader assembles a Config from defaults, an optional YAML file, and
// environment variables, file overriding defaults and environment
// overriding the file.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// LoaderOption customizes a Loader built by NewLoader.
type LoaderOption func(*Loader)

// WithConfigPaths overrides the list of paths searched for a config
// file, tried in order; the first that exists is loaded.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) { l.configPaths = paths }
}

// WithEnvPrefix overrides the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader builds a Loader with this module's default search paths and
// environment prefix, as overridden by opts.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"pcpptc.yaml",
			"config/pcpptc.yaml",
			"/etc/pcpptc/config.yaml",
		},
		envPrefix: defaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load assembles and validates a Config: defaults, then an optional
// config file, then environment variables.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("pcpptcconfig: load defaults: %w", err)
	}

	if err := l.loadConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "pcpptcconfig: %v\n", err)
	}

	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("pcpptcconfig: load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("pcpptcconfig: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		"strategy":              "equiangular",
		"k":                     3,
		"r":                     2,
		"integralize_depth":     50,
		"cycle_cover_opt_steps": 25,
		"cycle_cover_opt_size":  50,
		"tour_opt_steps":        25,
		"tour_opt_size":         50,

		"log.level":       "info",
		"log.format":      "json",
		"log.output":      "stdout",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,
	}

	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

func (l *Loader) loadConfigFile() error {
	if path := os.Getenv(configEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return l.k.Load(file.Provider(path), yaml.Parser())
		}
	}

	for _, path := range l.configPaths {
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return l.k.Load(file.Provider(abs), yaml.Parser())
		}
	}

	return fmt.Errorf("config file not found in paths: %v", l.configPaths)
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.Provider(l.envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
		// Only the "log" section is nested; every other key keeps its
		// underscores (PCPPTC_CYCLE_COVER_OPT_STEPS -> cycle_cover_opt_steps,
		// PCPPTC_LOG_MAX_SIZE -> log.max_size).
		if rest, ok := strings.CutPrefix(key, "log_"); ok {
			return "log." + rest
		}

		return key
	}), nil)
}

// Load loads a Config with this module's default search paths and
// environment prefix.
func Load() (*Config, error) {
	return NewLoader().Load()
}

// MustLoad loads a Config or panics.
func MustLoad(opts ...LoaderOption) *Config {
	cfg, err := NewLoader(opts...).Load()
	if err != nil {
		panic(fmt.Sprintf("pcpptcconfig: %v", err))
	}

	return cfg
}

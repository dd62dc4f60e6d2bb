package options

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "OPENSEARCH_OUTPUT"

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string // settings file path (yaml/json/toml)
	EnvFile    string // optional .env file path
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit settings file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads the raw output settings from a file, with environment variables
// (prefixed OPENSEARCH_OUTPUT_) overriding file values. The result is a flat
// Options map keyed by the documented setting names.
func Load(opts ...LoaderOption) (Options, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	// .env first so the env overrides below can see its variables
	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", lc.EnvFile, err)
		}
	}

	v := viper.New()
	if lc.ConfigFile != "" {
		if _, err := os.Stat(lc.ConfigFile); err != nil {
			return nil, fmt.Errorf("settings file %s: %w", lc.ConfigFile, err)
		}
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings file %s: %w", lc.ConfigFile, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvOverrides(v)

	settings := v.AllSettings()
	if settings == nil {
		settings = map[string]any{}
	}
	return FromMap(settings), nil
}

// bindEnvOverrides binds every OPENSEARCH_OUTPUT_* variable so AllSettings
// includes keys that only exist in the environment.
func bindEnvOverrides(v *viper.Viper) {
	prefix := envPrefix + "_"
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(pair[0], prefix))
		v.Set(key, pair[1])
	}
}

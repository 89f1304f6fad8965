package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Project-Sylos/Mimic/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "MIMIC_"

// envKeys maps environment variables to config paths
var envKeys = map[string]string{
	EnvPrefix + "GENERATOR_DEFAULT_BATCH_SIZE":  "generator.default_batch_size",
	EnvPrefix + "GENERATOR_MAX_BATCH_SIZE":      "generator.max_batch_size",
	EnvPrefix + "GENERATOR_MAX_ERROR_COUNT":     "generator.max_error_count",
	EnvPrefix + "GENERATOR_DETERMINISTIC_NOISE": "generator.deterministic_noise",
	EnvPrefix + "GENERATOR_CACHE_SIZE":          "generator.cache_size",
	EnvPrefix + "API_HOST":                      "api.host",
	EnvPrefix + "API_PORT":                      "api.port",
	EnvPrefix + "API_ALLOWED_ORIGINS":           "api.allowed_origins",
	EnvPrefix + "API_RATE_LIMIT":                "api.rate_limit",
	EnvPrefix + "LOG_LEVEL":                     "log.level",
	EnvPrefix + "LOG_JSON":                      "log.json",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() types.Config {
	return types.Config{
		Generator: types.GeneratorConfig{
			DefaultBatchSize:   types.DefaultBatchSize,
			MaxBatchSize:       1000,
			MaxErrorCount:      0,
			DeterministicNoise: false,
			CacheSize:          256,
		},
		API: types.APIConfig{
			Host:           "localhost",
			Port:           5000,
			AllowedOrigins: []string{"*"},
			RateLimit:      "",
		},
		Log: types.LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// Load returns the default configuration overlaid with the file at
// configPath (skipped when empty) and then with MIMIC_* environment variables.
func Load(configPath string) (*types.Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		fileCfg, err := readFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = *fileCfg
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(configPath string) (*types.Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config path cannot be empty")
	}
	return Load(configPath)
}

// readFile decodes a JSON config on top of the defaults, so omitted keys keep
// their default values.
func readFile(configPath string) (*types.Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// applyEnv overlays MIMIC_* environment variables onto cfg
func applyEnv(cfg *types.Config) error {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(*cfg, "koanf"), nil); err != nil {
		return fmt.Errorf("failed to load config values: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			path, ok := envKeys[key]
			if !ok {
				return "", nil
			}
			if path == "api.allowed_origins" {
				return path, splitList(value)
			}
			return path, value
		},
	}), nil); err != nil {
		return fmt.Errorf("failed to load environment variables: %w", err)
	}

	var out types.Config
	if err := k.UnmarshalWithConf("", &out, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	*cfg = out
	return nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Validate checks that the configuration parameters are valid
func Validate(cfg *types.Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s failed %s%s validation (got %v)", fe.Namespace(), fe.Tag(), paramSuffix(fe.Param()), fe.Value())
		}
		return err
	}

	if cfg.API.Host == "" {
		return fmt.Errorf("API host cannot be empty")
	}

	return nil
}

func paramSuffix(param string) string {
	if param == "" {
		return ""
	}
	return "=" + param
}

// SaveToFile saves configuration to a JSON file
func SaveToFile(cfg *types.Config, configPath string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

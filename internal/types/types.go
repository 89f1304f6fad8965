package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Config represents the complete configuration for Mimic
type Config struct {
	Generator GeneratorConfig `json:"generator" koanf:"generator"`
	API       APIConfig       `json:"api" koanf:"api"`
	Log       LogConfig       `json:"log" koanf:"log"`
}

// GeneratorConfig represents the batch generation configuration
type GeneratorConfig struct {
	DefaultBatchSize   int  `json:"default_batch_size" koanf:"default_batch_size" validate:"gt=0"`
	MaxBatchSize       int  `json:"max_batch_size" koanf:"max_batch_size" validate:"gt=0,gtefield=DefaultBatchSize"`
	MaxErrorCount      int  `json:"max_error_count" koanf:"max_error_count" validate:"gte=0"` // 0 means unlimited
	DeterministicNoise bool `json:"deterministic_noise" koanf:"deterministic_noise"`
	CacheSize          int  `json:"cache_size" koanf:"cache_size" validate:"gte=0"` // 0 disables the clean-batch cache
}

// APIConfig represents the HTTP API configuration
type APIConfig struct {
	Host           string   `json:"host" koanf:"host"`
	Port           int      `json:"port" koanf:"port" validate:"min=1,max=65535"`
	AllowedOrigins []string `json:"allowed_origins" koanf:"allowed_origins"`
	RateLimit      string   `json:"rate_limit" koanf:"rate_limit"` // limiter format, e.g. "600-M"; empty disables
}

// LogConfig represents the logging configuration
type LogConfig struct {
	Level string `json:"level" koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `json:"json" koanf:"json"`
}

// Seed is the caller-supplied seed. It decodes from either a JSON string or a
// JSON number; numbers are kept in their shortest decimal text form so they
// can later be read as base-36 digits.
type Seed string

// UnmarshalJSON accepts "abc", 42 and null.
func (s *Seed) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Seed(str)
		return nil
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("seed must be a string or a number, got %s", data)
		}
		*s = Seed(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}
}

// GenerationRequest represents one batch generation call
type GenerationRequest struct {
	Region     string  `json:"region"`
	ErrorCount float64 `json:"errorCount"`
	Seed       Seed    `json:"seed"`
	Page       int     `json:"page" validate:"gte=0"`
	BatchSize  *int    `json:"batchSize,omitempty" validate:"omitempty,gt=0"`
}

// Record is a single synthesized (and possibly corrupted) person
type Record struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

// Batch is the result of one generation call
type Batch struct {
	Records      []Record `json:"records"`
	Fingerprint  string   `json:"fingerprint"`   // SHA-256 over the clean values
	CombinedSeed int64    `json:"combined_seed"` // base-36 seed + page
	Region       string   `json:"region"`
	Page         int      `json:"page"`
	BatchSize    int      `json:"batch_size"`
	Cached       bool     `json:"-"`
}

// RegionInfo describes one catalog entry
type RegionInfo struct {
	Key          string   `json:"key"`
	FirstNames   []string `json:"first_names"`
	Surnames     []string `json:"surnames"`
	Cities       []string `json:"cities"`
	StreetTypes  []string `json:"street_types"`
	PhoneFormats []string `json:"phone_formats"`
}

// APIResponse represents a generic API response
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"` // error kind, e.g. "UnknownRegion"
	Data    any    `json:"data,omitempty"`
}

// DefaultBatchSize is used when a request omits batchSize
const DefaultBatchSize = 20

package sdk

import (
	"context"
	"fmt"

	"github.com/Project-Sylos/Mimic/internal/catalog"
	"github.com/Project-Sylos/Mimic/internal/config"
	"github.com/Project-Sylos/Mimic/internal/generator"
	"github.com/Project-Sylos/Mimic/internal/types"
)

// Mimic is the public SDK interface for fake record generation
// This wraps the internal generator to provide a clean public API
type Mimic struct {
	cfg *types.Config
	gen *generator.Generator
}

// New creates a new Mimic instance using the specified config file.
// An empty path uses the built-in defaults; MIMIC_* environment variables
// apply either way.
func New(configPath string) (*Mimic, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithDefaults creates a new Mimic instance using default configuration
func NewWithDefaults() (*Mimic, error) {
	return New("")
}

// NewWithConfig creates a new Mimic instance from an in-memory configuration
func NewWithConfig(cfg *Config) (*Mimic, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	gen, err := generator.New(catalog.Default(), cfg.Generator)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}

	return &Mimic{
		cfg: cfg,
		gen: gen,
	}, nil
}

// Generate produces one batch of records for the request
func (m *Mimic) Generate(ctx context.Context, req GenerationRequest) (*Batch, error) {
	return m.gen.Generate(ctx, req)
}

// Regions returns every supported region with its lookup data
func (m *Mimic) Regions() []RegionInfo {
	return m.gen.Catalog().Regions()
}

// Region returns one region's lookup data
func (m *Mimic) Region(key string) (RegionInfo, error) {
	r, err := m.gen.Catalog().Lookup(key)
	if err != nil {
		return RegionInfo{}, err
	}
	return r.Info(), nil
}

// GetConfig returns the current configuration
func (m *Mimic) GetConfig() *Config {
	return m.cfg
}

// ErrorKind names the error taxonomy entry of err ("UnknownRegion",
// "InvalidSeed", "InvalidRequest" or "InternalGenerationError")
func ErrorKind(err error) string {
	return generator.ErrorKind(err)
}

// IsValidation reports whether err was caused by the request itself
func IsValidation(err error) bool {
	return generator.IsValidation(err)
}

// Re-export types for convenience
type (
	Config            = types.Config
	GenerationRequest = types.GenerationRequest
	Seed              = types.Seed
	Record            = types.Record
	Batch             = types.Batch
	RegionInfo        = types.RegionInfo
	APIResponse       = types.APIResponse
)

// Re-export errors
var (
	ErrUnknownRegion  = catalog.ErrUnknownRegion
	ErrInvalidSeed    = generator.ErrInvalidSeed
	ErrInvalidRequest = generator.ErrInvalidRequest
	ErrGeneration     = generator.ErrGeneration
)

// DefaultBatchSize is used when a request omits batchSize
const DefaultBatchSize = types.DefaultBatchSize

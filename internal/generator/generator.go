package generator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Project-Sylos/Mimic/internal/catalog"
	"github.com/Project-Sylos/Mimic/internal/logger"
	"github.com/Project-Sylos/Mimic/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// person holds the clean synthesized fields of one record
type person struct {
	name    string
	address string
	phone   string
}

type batchKey struct {
	region string
	seed   int64
	size   int
}

// Generator turns generation requests into batches of records. It is safe for
// concurrent use: every call owns its random streams and the catalog and cache
// are read-only or internally synchronized.
type Generator struct {
	catalog  *catalog.Catalog
	cfg      types.GeneratorConfig
	validate *validator.Validate
	cache    *lru.Cache[batchKey, []person]
	newID    func() string
}

// Option customizes a Generator
type Option func(*Generator)

// WithIDFunc replaces the record identifier source (uuid by default)
func WithIDFunc(fn func() string) Option {
	return func(g *Generator) {
		g.newID = fn
	}
}

// New creates a generator over the given catalog
func New(cat *catalog.Catalog, cfg types.GeneratorConfig, opts ...Option) (*Generator, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if cfg.DefaultBatchSize <= 0 {
		cfg.DefaultBatchSize = types.DefaultBatchSize
	}
	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("cache_size must be non-negative, got %d", cfg.CacheSize)
	}

	g := &Generator{
		catalog:  cat,
		cfg:      cfg,
		validate: newValidator(),
		newID:    func() string { return uuid.New().String() },
	}

	if cfg.CacheSize > 0 {
		cache, err := lru.New[batchKey, []person](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create batch cache: %w", err)
		}
		g.cache = cache
	}

	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Catalog returns the region catalog the generator draws from
func (g *Generator) Catalog() *catalog.Catalog {
	return g.catalog
}

// Generate produces one batch. The request is fully validated before any
// records are made, so a failed call never yields a partial batch.
func (g *Generator) Generate(ctx context.Context, req types.GenerationRequest) (*types.Batch, error) {
	log := logger.FromContext(ctx)

	batchSize, edits, err := g.check(req)
	if err != nil {
		return nil, err
	}

	combined, err := CombineSeed(string(req.Seed), req.Page)
	if err != nil {
		return nil, err
	}

	region, err := g.catalog.Lookup(req.Region)
	if err != nil {
		return nil, err
	}

	people, cached, err := g.cleanBatch(region, combined, batchSize)
	if err != nil {
		return nil, err
	}

	noise := newNoiseSource(combined, g.cfg.DeterministicNoise)
	records := make([]types.Record, len(people))
	for i, p := range people {
		records[i] = types.Record{
			Identifier: g.newID(),
			Name:       Corrupt(p.name, edits, noise),
			Address:    Corrupt(p.address, edits, noise),
			Phone:      Corrupt(p.phone, edits, noise),
		}
	}

	log.Debug("batch generated",
		"region", region.Key,
		"combined_seed", combined,
		"batch_size", batchSize,
		"edits", edits,
		"cached", cached,
	)

	return &types.Batch{
		Records:      records,
		Fingerprint:  Fingerprint(people),
		CombinedSeed: combined,
		Region:       region.Key,
		Page:         req.Page,
		BatchSize:    batchSize,
		Cached:       cached,
	}, nil
}

// check validates the request shape and resolves the batch size and edit count
func (g *Generator) check(req types.GenerationRequest) (int, int, error) {
	if err := g.validate.Struct(req); err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrInvalidRequest, describe(err))
	}

	batchSize := g.cfg.DefaultBatchSize
	if req.BatchSize != nil {
		batchSize = *req.BatchSize
	}
	if g.cfg.MaxBatchSize > 0 && batchSize > g.cfg.MaxBatchSize {
		return 0, 0, fmt.Errorf("%w: batchSize %d exceeds the maximum of %d", ErrInvalidRequest, batchSize, g.cfg.MaxBatchSize)
	}

	edits := EditCount(req.ErrorCount)
	if g.cfg.MaxErrorCount > 0 && edits > g.cfg.MaxErrorCount {
		return 0, 0, fmt.Errorf("%w: errorCount %d exceeds the maximum of %d", ErrInvalidRequest, edits, g.cfg.MaxErrorCount)
	}
	return batchSize, edits, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// cleanBatch returns the uncorrupted values for (region, seed, size), from the
// cache when possible. The returned slice is shared and must not be modified.
func (g *Generator) cleanBatch(region catalog.Region, combined int64, size int) ([]person, bool, error) {
	key := batchKey{region: region.Key, seed: combined, size: size}
	if g.cache != nil {
		if people, ok := g.cache.Get(key); ok {
			return people, true, nil
		}
	}

	people, err := synthesizeBatch(region, NewRNG(combined), size)
	if err != nil {
		return nil, false, err
	}
	if g.cache != nil {
		g.cache.Add(key, people)
	}
	return people, false, nil
}

// synthesizeBatch draws size people from one stream: name, address, phone
// for each record in turn.
func synthesizeBatch(region catalog.Region, src Source, size int) (people []person, err error) {
	defer func() {
		if r := recover(); r != nil {
			people = nil
			err = fmt.Errorf("%w: %v", ErrGeneration, r)
		}
	}()

	people = make([]person, size)
	for i := range people {
		people[i] = person{
			name:    SynthesizeName(region, src),
			address: SynthesizeAddress(region, src),
			phone:   SynthesizePhone(region, src),
		}
	}
	return people, nil
}

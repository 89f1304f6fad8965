package generator

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Project-Sylos/Mimic/internal/catalog"
	"github.com/Project-Sylos/Mimic/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newTestGenerator(t *testing.T, cfg types.GeneratorConfig, opts ...Option) *Generator {
	t.Helper()
	g, err := New(catalog.Default(), cfg, opts...)
	require.NoError(t, err)
	return g
}

func cleanFields(b *types.Batch) [][3]string {
	out := make([][3]string, len(b.Records))
	for i, r := range b.Records {
		out[i] = [3]string{r.Name, r.Address, r.Phone}
	}
	return out
}

func TestNew(t *testing.T) {
	_, err := New(nil, types.GeneratorConfig{})
	require.Error(t, err)

	_, err = New(catalog.Default(), types.GeneratorConfig{CacheSize: -1})
	require.Error(t, err)

	g := newTestGenerator(t, types.GeneratorConfig{})
	assert.Equal(t, types.DefaultBatchSize, g.cfg.DefaultBatchSize)
	assert.Nil(t, g.cache)
	assert.Same(t, catalog.Default(), g.Catalog())
}

func TestGenerateDefaultBatchSize(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{})

	batch, err := g.Generate(context.Background(), types.GenerationRequest{Region: "USA", Seed: "abc"})

	require.NoError(t, err)
	assert.Len(t, batch.Records, 20)
	assert.Equal(t, 20, batch.BatchSize)
	assert.Equal(t, "USA", batch.Region)
	assert.Equal(t, int64(13368), batch.CombinedSeed)
	assert.Len(t, batch.Fingerprint, 64)
}

func TestGenerateBatchSizes(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{MaxBatchSize: 500})

	for _, size := range []int{1, 2, 7, 100, 500} {
		batch, err := g.Generate(context.Background(), types.GenerationRequest{
			Region:    "Poland",
			Seed:      "xyz",
			Page:      3,
			BatchSize: intPtr(size),
		})
		require.NoError(t, err)
		assert.Len(t, batch.Records, size)
	}
}

func TestGenerateDeterminism(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{})
	req := types.GenerationRequest{Region: "Georgia", Seed: "hello", Page: 4, BatchSize: intPtr(15)}

	first, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, cleanFields(first), cleanFields(second))
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.False(t, first.Cached)
	assert.False(t, second.Cached)

	// A fresh generator (as after a restart) reproduces the same values
	other := newTestGenerator(t, types.GeneratorConfig{})
	third, err := other.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, cleanFields(first), cleanFields(third))
}

func TestGenerateMatchesDirectSynthesis(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{})
	batch, err := g.Generate(context.Background(), types.GenerationRequest{Region: "USA", Seed: "abc", Page: 2, BatchSize: intPtr(3)})
	require.NoError(t, err)

	region := usa(t)
	rng := NewRNG(13370)
	for i, rec := range batch.Records {
		assert.Equal(t, SynthesizeName(region, rng), rec.Name, "record %d", i)
		assert.Equal(t, SynthesizeAddress(region, rng), rec.Address, "record %d", i)
		assert.Equal(t, SynthesizePhone(region, rng), rec.Phone, "record %d", i)
	}
}

func TestGenerateNumericAndStringSeedsAgree(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{})
	var numeric types.Seed
	require.NoError(t, numeric.UnmarshalJSON([]byte("42")))

	a, err := g.Generate(context.Background(), types.GenerationRequest{Region: "USA", Seed: numeric, BatchSize: intPtr(5)})
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), types.GenerationRequest{Region: "USA", Seed: "42", BatchSize: intPtr(5)})
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint, b.Fingerprint)
}

func TestGeneratePageSensitivity(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{})

	page0, err := g.Generate(context.Background(), types.GenerationRequest{Region: "USA", Seed: "abc", Page: 0})
	require.NoError(t, err)
	page1, err := g.Generate(context.Background(), types.GenerationRequest{Region: "USA", Seed: "abc", Page: 1})
	require.NoError(t, err)

	assert.NotEqual(t, page0.Fingerprint, page1.Fingerprint)
	assert.NotEqual(t, cleanFields(page0), cleanFields(page1))
}

func TestGenerateIdentifiersAreUnique(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{})
	batch, err := g.Generate(context.Background(), types.GenerationRequest{Region: "USA", Seed: "abc", BatchSize: intPtr(200)})
	require.NoError(t, err)

	seen := make(map[string]bool, len(batch.Records))
	for _, r := range batch.Records {
		require.NotEmpty(t, r.Identifier)
		assert.False(t, seen[r.Identifier], "duplicate identifier %s", r.Identifier)
		seen[r.Identifier] = true
	}
}

func TestGenerateWithIDFunc(t *testing.T) {
	n := 0
	g := newTestGenerator(t, types.GeneratorConfig{}, WithIDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))

	batch, err := g.Generate(context.Background(), types.GenerationRequest{Region: "USA", Seed: "a", BatchSize: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, "id-1", batch.Records[0].Identifier)
	assert.Equal(t, "id-3", batch.Records[2].Identifier)
}

func TestGenerateErrorCountHandling(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{})
	base := types.GenerationRequest{Region: "USA", Seed: "abc", BatchSize: intPtr(10)}

	clean, err := g.Generate(context.Background(), base)
	require.NoError(t, err)

	for _, count := range []float64{-5, -0.1, 0.5, 0.999} {
		req := base
		req.ErrorCount = count
		batch, err := g.Generate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, cleanFields(clean), cleanFields(batch), "errorCount %v should not corrupt", count)
	}

	req := base
	req.ErrorCount = 5
	noisy, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, clean.Fingerprint, noisy.Fingerprint, "fingerprint covers the clean values only")
	assert.NotEqual(t, cleanFields(clean), cleanFields(noisy))
}

func TestGenerateDeterministicNoise(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{DeterministicNoise: true})
	req := types.GenerationRequest{Region: "Poland", Seed: "noise", Page: 1, ErrorCount: 3.7, BatchSize: intPtr(12)}

	a, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, cleanFields(a), cleanFields(b))
	assert.NotEqual(t, a.Records[0].Identifier, b.Records[0].Identifier)
}

func TestGenerateCache(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{CacheSize: 4})
	req := types.GenerationRequest{Region: "USA", Seed: "cache", BatchSize: intPtr(5)}

	first, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, cleanFields(first), cleanFields(second))
	assert.NotEqual(t, first.Records[0].Identifier, second.Records[0].Identifier)

	// Different batch size is a different key
	req.BatchSize = intPtr(6)
	third, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, third.Cached)
	assert.Equal(t, cleanFields(first), cleanFields(third)[:5], "a longer batch extends the same stream")
}

func TestGenerateValidation(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{MaxBatchSize: 100, MaxErrorCount: 50})

	tests := []struct {
		name string
		req  types.GenerationRequest
		want error
		kind string
	}{
		{name: "unknown region", req: types.GenerationRequest{Region: "Atlantis", Seed: "abc"}, want: catalog.ErrUnknownRegion, kind: KindUnknownRegion},
		{name: "missing region", req: types.GenerationRequest{Seed: "abc"}, want: catalog.ErrUnknownRegion, kind: KindUnknownRegion},
		{name: "unparseable seed", req: types.GenerationRequest{Region: "USA", Seed: "!!!"}, want: ErrInvalidSeed, kind: KindInvalidSeed},
		{name: "missing seed", req: types.GenerationRequest{Region: "USA"}, want: ErrInvalidSeed, kind: KindInvalidSeed},
		{name: "zero batch size", req: types.GenerationRequest{Region: "USA", Seed: "a", BatchSize: intPtr(0)}, want: ErrInvalidRequest, kind: KindInvalidRequest},
		{name: "negative batch size", req: types.GenerationRequest{Region: "USA", Seed: "a", BatchSize: intPtr(-3)}, want: ErrInvalidRequest, kind: KindInvalidRequest},
		{name: "batch size above maximum", req: types.GenerationRequest{Region: "USA", Seed: "a", BatchSize: intPtr(101)}, want: ErrInvalidRequest, kind: KindInvalidRequest},
		{name: "negative page", req: types.GenerationRequest{Region: "USA", Seed: "a", Page: -1}, want: ErrInvalidRequest, kind: KindInvalidRequest},
		{name: "error count above maximum", req: types.GenerationRequest{Region: "USA", Seed: "a", ErrorCount: 51}, want: ErrInvalidRequest, kind: KindInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := g.Generate(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, batch, "no partial batch on validation failure")
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, tt.kind, ErrorKind(err))
			assert.True(t, IsValidation(err))
		})
	}
}

func TestValidationMessagesUseJSONNames(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{})
	_, err := g.Generate(context.Background(), types.GenerationRequest{Region: "USA", Seed: "a", BatchSize: intPtr(0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batchSize must be greater than 0")
}

type panickingSource struct{ scriptedSource }

func (p *panickingSource) Street() string { panic("street source unavailable") }

func TestSynthesizeBatchRecoversSourceFailure(t *testing.T) {
	src := &panickingSource{scriptedSource{ints: []int{0, 0}}}

	people, err := synthesizeBatch(usa(t), src, 3)

	require.Error(t, err)
	assert.Nil(t, people)
	assert.True(t, errors.Is(err, ErrGeneration))
	assert.Equal(t, KindInternal, ErrorKind(err))
	assert.False(t, IsValidation(err))
}

func TestErrorKindNil(t *testing.T) {
	assert.False(t, IsValidation(nil))
	assert.Equal(t, KindInternal, ErrorKind(errors.New("boom")))
}

func TestGenerateConcurrent(t *testing.T) {
	g := newTestGenerator(t, types.GeneratorConfig{CacheSize: 8})
	req := types.GenerationRequest{Region: "USA", Seed: "race", ErrorCount: 2, BatchSize: intPtr(30)}

	want, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	errs := make(chan error, 16)
	fps := make(chan string, 16)
	for i := 0; i < 16; i++ {
		go func() {
			b, err := g.Generate(context.Background(), req)
			if err != nil {
				errs <- err
				return
			}
			fps <- b.Fingerprint
		}()
	}
	for i := 0; i < 16; i++ {
		select {
		case err := <-errs:
			t.Fatalf("concurrent generate failed: %v", err)
		case fp := <-fps:
			assert.Equal(t, want.Fingerprint, fp)
		}
	}
}

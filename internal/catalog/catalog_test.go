package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"USA", "Poland", "Georgia"}, c.Keys())

	for _, key := range c.Keys() {
		t.Run(key, func(t *testing.T) {
			r, err := c.Lookup(key)
			require.NoError(t, err)
			assert.Equal(t, key, r.Key)
			assert.NotEmpty(t, r.FirstNames)
			assert.NotEmpty(t, r.Surnames)
			assert.NotEmpty(t, r.Cities)
			assert.NotEmpty(t, r.StreetTypes)
			assert.NotEmpty(t, r.PhoneFormats)
			for _, format := range r.PhoneFormats {
				assert.True(t, strings.ContainsRune(format, PhonePlaceholder), "format %q has no placeholder", format)
			}
		})
	}

	assert.Same(t, c, Default(), "Default should build the catalog once")
}

func TestLookupUnknownRegion(t *testing.T) {
	for _, key := range []string{"Atlantis", "", "usa", "USA "} {
		_, err := Default().Lookup(key)
		require.Error(t, err, "key %q", key)
		assert.True(t, errors.Is(err, ErrUnknownRegion))
	}
}

func TestUSAPhoneFormats(t *testing.T) {
	r, err := Default().Lookup("USA")
	require.NoError(t, err)
	assert.Contains(t, r.PhoneFormats, "(###) ###-####")
}

func TestNewValidation(t *testing.T) {
	valid := Region{
		Key:          "Testland",
		FirstNames:   []string{"A"},
		Surnames:     []string{"B"},
		Cities:       []string{"C"},
		StreetTypes:  []string{"D"},
		PhoneFormats: []string{"#"},
	}

	tests := []struct {
		name    string
		regions []Region
		wantErr string
	}{
		{name: "valid", regions: []Region{valid}},
		{name: "empty key", regions: []Region{func() Region { r := valid; r.Key = ""; return r }()}, wantErr: "key cannot be empty"},
		{name: "no cities", regions: []Region{func() Region { r := valid; r.Cities = nil; return r }()}, wantErr: "cities cannot be empty"},
		{name: "no phone formats", regions: []Region{func() Region { r := valid; r.PhoneFormats = []string{}; return r }()}, wantErr: "phone_formats cannot be empty"},
		{name: "duplicate", regions: []Region{valid, valid}, wantErr: "duplicate region"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.regions...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"Testland"}, c.Keys())
		})
	}
}

func TestRegionsAreDetachedCopies(t *testing.T) {
	c := Default()
	infos := c.Regions()
	require.Len(t, infos, 3)

	infos[0].FirstNames[0] = "Mutated"
	keys := c.Keys()
	keys[0] = "Mutated"

	r, err := c.Lookup("USA")
	require.NoError(t, err)
	assert.Equal(t, "John", r.FirstNames[0])
	assert.Equal(t, "USA", c.Keys()[0])
}

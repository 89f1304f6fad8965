// Package catalog holds the static per-region lookup tables used to
// synthesize names, cities and phone numbers.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/Project-Sylos/Mimic/internal/types"
)

// ErrUnknownRegion is returned when a region key is not in the catalog
var ErrUnknownRegion = errors.New("unknown region")

// PhonePlaceholder is replaced by one random digit in a phone format
const PhonePlaceholder = '#'

// Region holds the name, place and phone conventions of one supported region.
// The slices are shared and must not be mutated.
type Region struct {
	Key          string
	FirstNames   []string
	Surnames     []string
	Cities       []string
	StreetTypes  []string
	PhoneFormats []string
}

// Info returns a detached copy of the region suitable for serialization
func (r Region) Info() types.RegionInfo {
	return types.RegionInfo{
		Key:          r.Key,
		FirstNames:   slices.Clone(r.FirstNames),
		Surnames:     slices.Clone(r.Surnames),
		Cities:       slices.Clone(r.Cities),
		StreetTypes:  slices.Clone(r.StreetTypes),
		PhoneFormats: slices.Clone(r.PhoneFormats),
	}
}

func (r Region) validate() error {
	if r.Key == "" {
		return fmt.Errorf("region key cannot be empty")
	}
	lists := []struct {
		name  string
		items []string
	}{
		{"first_names", r.FirstNames},
		{"surnames", r.Surnames},
		{"cities", r.Cities},
		{"street_types", r.StreetTypes},
		{"phone_formats", r.PhoneFormats},
	}
	for _, l := range lists {
		if len(l.items) == 0 {
			return fmt.Errorf("region %s: %s cannot be empty", r.Key, l.name)
		}
	}
	return nil
}

// Catalog is an immutable region table. It is safe for concurrent use.
type Catalog struct {
	regions map[string]Region
	keys    []string
}

// New builds a catalog from the given regions. Every region must carry
// non-empty lists and keys must be unique.
func New(regions ...Region) (*Catalog, error) {
	c := &Catalog{
		regions: make(map[string]Region, len(regions)),
		keys:    make([]string, 0, len(regions)),
	}
	for _, r := range regions {
		if err := r.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.regions[r.Key]; dup {
			return nil, fmt.Errorf("duplicate region %s", r.Key)
		}
		c.regions[r.Key] = r
		c.keys = append(c.keys, r.Key)
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(builtinRegions...)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid builtin region table: %v", err))
	}
	return c
})

// Default returns the built-in catalog (USA, Poland, Georgia)
func Default() *Catalog {
	return defaultCatalog()
}

// Lookup returns the region registered under key
func (c *Catalog) Lookup(key string) (Region, error) {
	r, ok := c.regions[key]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrUnknownRegion, key)
	}
	return r, nil
}

// Keys returns the region keys in registration order
func (c *Catalog) Keys() []string {
	return slices.Clone(c.keys)
}

// Regions returns serializable copies of every region in registration order
func (c *Catalog) Regions() []types.RegionInfo {
	infos := make([]types.RegionInfo, 0, len(c.keys))
	for _, key := range c.keys {
		infos = append(infos, c.regions[key].Info())
	}
	return infos
}

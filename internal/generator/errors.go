package generator

import (
	"errors"

	"github.com/Project-Sylos/Mimic/internal/catalog"
)

var (
	// ErrInvalidSeed means the seed could not be read as a base-36 integer
	ErrInvalidSeed = errors.New("invalid seed")
	// ErrInvalidRequest covers the remaining request validation failures
	ErrInvalidRequest = errors.New("invalid request")
	// ErrGeneration means a random or fake-data source failed mid-batch
	ErrGeneration = errors.New("generation failed")
)

// Error kinds reported to callers
const (
	KindUnknownRegion  = "UnknownRegion"
	KindInvalidSeed    = "InvalidSeed"
	KindInvalidRequest = "InvalidRequest"
	KindInternal       = "InternalGenerationError"
)

// ErrorKind names the taxonomy entry err belongs to. Errors outside the
// taxonomy are reported as internal.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, catalog.ErrUnknownRegion):
		return KindUnknownRegion
	case errors.Is(err, ErrInvalidSeed):
		return KindInvalidSeed
	case errors.Is(err, ErrInvalidRequest):
		return KindInvalidRequest
	default:
		return KindInternal
	}
}

// IsValidation reports whether err is a client-side validation failure
func IsValidation(err error) bool {
	return err != nil && ErrorKind(err) != KindInternal
}

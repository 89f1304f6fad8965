package generator

import (
	"crypto/sha256"
	"fmt"
)

// field separators for Fingerprint
const (
	unitSep   = 0x1f
	recordSep = 0x1e
)

// ComputeChecksum computes a SHA256 checksum for the given data
func ComputeChecksum(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// Fingerprint hashes the ordered clean (pre-corruption) values of a batch.
// Two batches share a fingerprint exactly when their clean values match.
func Fingerprint(people []person) string {
	size := 0
	for _, p := range people {
		size += len(p.name) + len(p.address) + len(p.phone) + 3
	}
	buf := make([]byte, 0, size)
	for _, p := range people {
		buf = append(buf, p.name...)
		buf = append(buf, unitSep)
		buf = append(buf, p.address...)
		buf = append(buf, unitSep)
		buf = append(buf, p.phone...)
		buf = append(buf, recordSep)
	}
	return ComputeChecksum(buf)
}

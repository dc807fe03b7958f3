// Package random draws shuffle seeds from the operating system's
// entropy pool, for callers that want an unpredictable deal while
// keeping the shuffle itself reproducible from the logged seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed returns a 64-bit seed read from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read entropy: %w", err)
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

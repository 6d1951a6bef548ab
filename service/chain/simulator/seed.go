package simulator

import (
	"hash/fnv"
	"strings"
)

// seedOf hashes the parts joined by "|" with 32-bit FNV-1a. The same parts
// always give the same seed.
func seedOf(parts ...string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(strings.Join(parts, "|")))
	return h.Sum32()
}

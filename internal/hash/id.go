// Package hash computes the 64-bit identifiers that key the validated-name
// cache.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given name string.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

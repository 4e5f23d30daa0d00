// Package hash wraps the xxHash64 functions used for content hashing and
// payload checksums.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// String computes the xxHash64 of the given string. It agrees with Sum on the
// same bytes.
func String(data string) uint64 {
	return xxhash.Sum64String(data)
}


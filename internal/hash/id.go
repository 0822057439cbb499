// Package hash computes the name ids used by the descriptor registry.
package hash

import "github.com/cespare/xxhash/v2"

// ID returns the 64-bit id of a descriptor name. Ids are stable across processes, so a
// registry indexed by id can be rebuilt from the same schema without renumbering.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

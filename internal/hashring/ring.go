// Package hashring implements a consistent hash ring with virtual nodes.
//
// Each real node is projected onto the ring as a fixed number of virtual
// nodes (replicas) so that keys spread evenly even with few real nodes.
// Lookups walk clockwise: a key is owned by the real node behind the first
// virtual hash greater than or equal to the key's hash, wrapping to the
// start of the ring when the key hashes past the last entry.
//
// The ring is not safe for concurrent use on its own — the registry store
// that owns it serializes mutations behind a readers-writer lock and swaps
// in a freshly built ring on every refresh.
package hashring

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a string key onto the 64-bit ring space.
type Hasher func(key string) uint64

// DefaultHasher is xxHash64 with seed 0, matching the hash used by the
// sibling services so that a given key lands on the same instance no matter
// which node computes the placement.
func DefaultHasher(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Ring is a consistent hash ring over named real nodes.
// The zero value is not usable — create instances with New.
type Ring struct {
	replicas int
	hasher   Hasher

	// hashes holds every virtual node hash in ascending order.
	hashes []uint64

	// owners maps each virtual node hash back to its real node name.
	// If two virtual labels collide on a 64-bit hash the last writer wins;
	// with xxHash64 the chance is negligible and the fallout is one key
	// range briefly owned by the wrong instance.
	owners map[uint64]string
}

// New creates an empty ring. replicas is the number of virtual nodes added
// per real node; hasher may be nil to use DefaultHasher.
func New(replicas int, hasher Hasher) *Ring {
	if hasher == nil {
		hasher = DefaultHasher
	}
	return &Ring{
		replicas: replicas,
		hasher:   hasher,
		owners:   make(map[uint64]string),
	}
}

// virtualLabel derives the i-th virtual node label for a real node.
func virtualLabel(name string, i int) string {
	return fmt.Sprintf("%s#%d", name, i)
}

// AddNode projects name onto the ring as replicas virtual nodes and
// re-sorts the ring.
func (r *Ring) AddNode(name string) {
	for i := 0; i < r.replicas; i++ {
		h := r.hasher(virtualLabel(name, i))
		r.hashes = append(r.hashes, h)
		r.owners[h] = name
	}
	sort.Slice(r.hashes, func(a, b int) bool { return r.hashes[a] < r.hashes[b] })
}

// RemoveNode deletes all virtual nodes of name, preserving ring order.
func (r *Ring) RemoveNode(name string) {
	for i := 0; i < r.replicas; i++ {
		h := r.hasher(virtualLabel(name, i))

		idx := sort.Search(len(r.hashes), func(j int) bool { return r.hashes[j] >= h })
		if idx < len(r.hashes) && r.hashes[idx] == h {
			r.hashes = append(r.hashes[:idx], r.hashes[idx+1:]...)
		}
		delete(r.owners, h)
	}
}

// GetNode returns the real node owning key, walking clockwise from the
// key's hash. The second return is false when the ring is empty.
func (r *Ring) GetNode(key string) (string, bool) {
	if len(r.hashes) == 0 {
		return "", false
	}

	h := r.hasher(key)

	// First virtual hash >= h; an exact hit resolves to the same index.
	idx := sort.Search(len(r.hashes), func(j int) bool { return r.hashes[j] >= h })

	// Past the last entry the ring wraps around to its smallest hash.
	idx %= len(r.hashes)

	return r.owners[r.hashes[idx]], true
}

// Clear removes every node from the ring.
func (r *Ring) Clear() {
	r.hashes = nil
	r.owners = make(map[uint64]string)
}

// Len returns the number of virtual nodes currently on the ring.
func (r *Ring) Len() int {
	return len(r.owners)
}

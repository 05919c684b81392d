// Package registry implements service discovery against a Consul-compatible
// directory. It keeps, per upstream service name, a consistent-hash store of
// healthy instances — each carrying an "extra" resource attached at refresh
// time (for upstreams, a live gRPC client) — and handles the connector's own
// registration with a TTL health check kept alive by periodic heartbeats.
package registry

import (
	"sync"

	"github.com/meshwire/connector/internal/hashring"
)

// ServiceInstance identifies one healthy instance as reported by the
// directory listing. Immutable once produced.
type ServiceInstance struct {
	// ID is the directory-unique instance ID, and doubles as the node name
	// on the consistent-hash ring.
	ID string

	// Name is the logical service name the instance was discovered under.
	Name string

	// Address is the reachable host:port of the instance.
	Address string
}

// ServiceRecord couples an instance with the extra resource a refresh
// transformer attached to it. Records are rebuilt wholesale on every
// refresh; a record from a previous generation is never patched in place.
type ServiceRecord[T any] struct {
	Instance ServiceInstance
	Extra    T
}

// Store is the capability set a registry client keeps instances in.
// Implementations must make Update appear atomic to concurrent readers:
// a Pick racing an Update sees either the old generation or the new one,
// never a mix.
type Store[T any] interface {
	// Pick selects the record owning key. ok is false when the store is empty.
	Pick(key string) (rec ServiceRecord[T], ok bool)

	// List returns every record of the current generation.
	List() []ServiceRecord[T]

	// Update atomically replaces the whole store contents.
	Update(records []ServiceRecord[T])

	// Clear drops every record.
	Clear()
}

// RingStore is the consistent-hash Store implementation. Instance IDs are
// the ring nodes; Pick resolves the ring owner for a key and returns its
// record. Reads vastly outnumber writes (one write per refresh tick), so a
// readers-writer lock guards a ring/map pair that Update swaps wholesale.
type RingStore[T any] struct {
	replicas int
	hasher   hashring.Hasher

	mu      sync.RWMutex
	ring    *hashring.Ring
	records map[string]ServiceRecord[T]
}

// NewRingStore creates an empty store. replicas and hasher configure the
// underlying ring; hasher may be nil for xxHash64.
func NewRingStore[T any](replicas int, hasher hashring.Hasher) *RingStore[T] {
	return &RingStore[T]{
		replicas: replicas,
		hasher:   hasher,
		ring:     hashring.New(replicas, hasher),
		records:  make(map[string]ServiceRecord[T]),
	}
}

// Pick returns the record whose instance owns key on the ring.
func (s *RingStore[T]) Pick(key string) (ServiceRecord[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.ring.GetNode(key)
	if !ok {
		var zero ServiceRecord[T]
		return zero, false
	}

	rec, ok := s.records[id]
	return rec, ok
}

// List returns the records of the current generation in no particular order.
func (s *RingStore[T]) List() []ServiceRecord[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ServiceRecord[T], 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out
}

// Update replaces the ring and the record map in one swap. The new ring is
// built outside the lock so readers are only blocked for the pointer swap.
func (s *RingStore[T]) Update(records []ServiceRecord[T]) {
	ring := hashring.New(s.replicas, s.hasher)
	byID := make(map[string]ServiceRecord[T], len(records))
	for _, rec := range records {
		ring.AddNode(rec.Instance.ID)
		byID[rec.Instance.ID] = rec
	}

	s.mu.Lock()
	s.ring = ring
	s.records = byID
	s.mu.Unlock()
}

// Clear drops every record and resets the ring.
func (s *RingStore[T]) Clear() {
	s.mu.Lock()
	s.ring = hashring.New(s.replicas, s.hasher)
	s.records = make(map[string]ServiceRecord[T])
	s.mu.Unlock()
}

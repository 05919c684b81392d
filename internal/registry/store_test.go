package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string, extra string) ServiceRecord[string] {
	return ServiceRecord[string]{
		Instance: ServiceInstance{ID: id, Name: "user-service", Address: id + ":9000"},
		Extra:    extra,
	}
}

func TestRingStorePickEmpty(t *testing.T) {
	s := NewRingStore[string](100, nil)

	_, ok := s.Pick("anything")
	assert.False(t, ok)
	assert.Empty(t, s.List())
}

func TestRingStoreUpdateReplacesGeneration(t *testing.T) {
	s := NewRingStore[string](100, nil)

	s.Update([]ServiceRecord[string]{record("a", "conn-a"), record("b", "conn-b")})
	assert.Len(t, s.List(), 2)

	s.Update([]ServiceRecord[string]{record("c", "conn-c")})

	// Only the new generation is reachable.
	require.Len(t, s.List(), 1)
	assert.Equal(t, "c", s.List()[0].Instance.ID)

	for i := 0; i < 64; i++ {
		rec, ok := s.Pick(fmt.Sprintf("key-%d", i))
		require.True(t, ok)
		assert.Equal(t, "c", rec.Instance.ID)
	}
}

func TestRingStorePickResolvesRingOwner(t *testing.T) {
	s := NewRingStore[string](100, nil)
	s.Update([]ServiceRecord[string]{record("a", "conn-a"), record("b", "conn-b")})

	seen := map[string]int{}
	for i := 0; i < 512; i++ {
		rec, ok := s.Pick(fmt.Sprintf("user-%d", i))
		require.True(t, ok)
		seen[rec.Instance.ID]++
	}

	// With 100 replicas per node both instances must take a share.
	assert.Positive(t, seen["a"])
	assert.Positive(t, seen["b"])
}

func TestRingStoreClear(t *testing.T) {
	s := NewRingStore[string](10, nil)
	s.Update([]ServiceRecord[string]{record("a", "conn-a")})

	s.Clear()

	_, ok := s.Pick("key")
	assert.False(t, ok)
	assert.Empty(t, s.List())
}

func TestRingStoreConcurrentReadersNeverSeePartialState(t *testing.T) {
	s := NewRingStore[string](50, nil)
	genA := []ServiceRecord[string]{record("a1", ""), record("a2", "")}
	genB := []ServiceRecord[string]{record("b1", ""), record("b2", "")}

	s.Update(genA)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if i%2 == 0 {
				s.Update(genA)
			} else {
				s.Update(genB)
			}
		}
	}()

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				rec, ok := s.Pick(fmt.Sprintf("key-%d-%d", w, i))
				if !ok {
					t.Error("pick returned no record while the store was populated")
					return
				}
				id := rec.Instance.ID
				// Every observed record belongs wholly to one generation.
				if id != "a1" && id != "a2" && id != "b1" && id != "b2" {
					t.Errorf("pick returned unknown instance %q", id)
					return
				}
			}
		}(w)
	}

	wg.Wait()
	close(stop)
	<-writerDone
}

// pkg/memcache/destination_cache.go
package mem

import (
	"sync"
	"time"

	"desawisata/internal/models/db_models"
)

type DestinationCache interface {
	Set(id string, destination *db_models.Destination, ttl time.Duration)

	// Get returns the cached destination if not expired, nil otherwise.
	Get(id string) *db_models.Destination

	Invalidate(id string)
}

type entry struct {
	destination *db_models.Destination
	expiresAt   time.Time
}

type Destinations struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewDestinations() *Destinations {
	return &Destinations{
		data: make(map[string]entry),
	}
}

func (s *Destinations) Set(id string, destination *db_models.Destination, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry{
		destination: destination,
		expiresAt:   time.Now().Add(ttl),
	}
}

func (s *Destinations) Get(id string) *db_models.Destination {
	s.mu.RLock()
	e, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, id) // cleanup expired
		s.mu.Unlock()
		return nil
	}
	return e.destination
}

func (s *Destinations) Invalidate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}

package memory

import (
	"fmt"
	"sync"

	"github.com/go-gryf/gryf"
)

// Record is a single key/value pair within a stored dataset
type Record struct {
	Key   []byte
	Value []byte
}

// Store holds datasets in memory, keyed by location. It implements
// gryf.Storage so pipelines can manage intermediate locations against it.
type Store struct {
	lock     sync.RWMutex
	datasets map[gryf.Location][]Record
}

// NewStore returns an empty Store
func NewStore() *Store {
	return &Store{datasets: make(map[gryf.Location][]Record)}
}

// Write replaces the dataset at the given location
func (s *Store) Write(loc gryf.Location, records []Record) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.datasets[loc] = records
}

// Read returns the dataset at the given location
func (s *Store) Read(loc gryf.Location) ([]Record, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	records, ok := s.datasets[loc]
	if !ok {
		return nil, fmt.Errorf("No dataset at location %s", loc)
	}
	return records, nil
}

// Exists returns true iff a dataset is present at the given location
func (s *Store) Exists(loc gryf.Location) (bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	_, ok := s.datasets[loc]
	return ok, nil
}

// Locations returns every location currently holding a dataset
func (s *Store) Locations() []gryf.Location {
	s.lock.RLock()
	defer s.lock.RUnlock()
	locs := make([]gryf.Location, 0, len(s.datasets))
	for loc := range s.datasets {
		locs = append(locs, loc)
	}
	return locs
}

// Delete removes the dataset at the given location
func (s *Store) Delete(loc gryf.Location, recursive bool) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.datasets[loc]; !ok {
		return fmt.Errorf("No dataset at location %s", loc)
	}
	delete(s.datasets, loc)
	return nil
}

package banlist

import "sync"

// Store keeps the active ban records in memory, in insertion order.
//
// The store is volatile on purpose, a restart clears it.
//
// Discordgo runs event handlers on separate goroutines and the expiry
// sweeper ticks on its own goroutine as well, so every access goes
// through the mutex.
type Store struct {
	mu      sync.Mutex
	records []Record
}

func NewStore() *Store {
	return &Store{}
}

// Appends a record to the store.
//
// # NOTE: does not deduplicate on UserID, banning the same id twice leaves two records.
func (s *Store) Add(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, r)
}

// Removes the first record matching the given user id.
//
// Returns false if no record matched, the store is left unchanged then.
func (s *Store) Remove(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.UserID == userID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}

	return false
}

// Returns a snapshot copy of all current records in insertion order.
//
// Mutating the returned slice does not affect the store.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)

	return out
}

// Returns the number of records currently in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

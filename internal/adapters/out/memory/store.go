// Package memory is the in-process store. Dishes and orders live in ordered
// collections guarded by one RWMutex: a unit of work holds the write lock from Begin to
// Commit or Rollback, readers take the read lock.
package memory

import (
	"sync"

	"grubdash/internal/core/domain/model/kernel"
)

type Store struct {
	mu sync.RWMutex

	dishes   collection[dishRecord]
	orders   collection[orderRecord]
	dishIDs  *kernel.IDSequence
	orderIDs *kernel.IDSequence
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		dishes:   newCollection(func(r dishRecord) string { return r.ID }),
		orders:   newCollection(func(r orderRecord) string { return r.ID }),
		dishIDs:  kernel.NewIDSequence(),
		orderIDs: kernel.NewIDSequence(),
	}
}

// IsEmpty reports whether the store holds neither dishes nor orders.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dishes.len() == 0 && s.orders.len() == 0
}

// nextID draws from seq until the id is unused in c. Stored ids that are not decimal
// numbers are invisible to the sequence, so the check is needed only for them.
func nextID[R any](seq *kernel.IDSequence, c *collection[R]) kernel.ID {
	for {
		id := seq.Next()
		if c.findIndex(id.String()) < 0 {
			return id
		}
	}
}

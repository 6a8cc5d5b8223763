package kernel

import (
	"strconv"
	"sync"
)

// IDSequence issues monotonically increasing decimal ids. It is seeded above the largest
// numeric id already in use so issued ids never collide with existing records; ids that
// are not decimal numbers cannot collide with issued ones and are ignored for seeding.
//
// IDSequence is safe for concurrent use.
type IDSequence struct {
	mu   sync.Mutex
	last uint64
}

// NewIDSequence returns a sequence whose first id is greater than every numeric id in existing.
func NewIDSequence(existing ...ID) *IDSequence {
	s := &IDSequence{}
	s.Observe(existing...)
	return s
}

// Observe raises the floor of the sequence so that later ids exceed the given ones.
func (s *IDSequence) Observe(ids ...ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		n, err := strconv.ParseUint(id.String(), 10, 64)
		if err != nil {
			continue
		}
		if n > s.last {
			s.last = n
		}
	}
}

// Next returns the next id. It cannot fail.
func (s *IDSequence) Next() ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++
	return MustNewID(strconv.FormatUint(s.last, 10))
}

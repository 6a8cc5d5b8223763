package memory

import "slices"

// collection is an ordered list of records keyed by id. It is not synchronized;
// Store guards every collection with its lock.
type collection[R any] struct {
	records []R
	idOf    func(R) string
}

func newCollection[R any](idOf func(R) string) collection[R] {
	return collection[R]{idOf: idOf}
}

// list returns the records in insertion order.
func (c *collection[R]) list() []R {
	return slices.Clone(c.records)
}

func (c *collection[R]) append(record R) {
	c.records = append(c.records, record)
}

// findIndex returns the position of the record with id, or -1.
func (c *collection[R]) findIndex(id string) int {
	return slices.IndexFunc(c.records, func(r R) bool {
		return c.idOf(r) == id
	})
}

func (c *collection[R]) find(id string) (R, bool) {
	i := c.findIndex(id)
	if i < 0 {
		var zero R
		return zero, false
	}
	return c.records[i], true
}

func (c *collection[R]) replaceAt(i int, record R) {
	c.records[i] = record
}

func (c *collection[R]) removeAt(i int) {
	c.records = slices.Delete(c.records, i, i+1)
}

func (c *collection[R]) len() int {
	return len(c.records)
}

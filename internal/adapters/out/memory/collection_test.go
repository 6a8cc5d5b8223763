package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollection(t *testing.T) {
	c := newCollection(func(r dishRecord) string { return r.ID })
	c.append(dishRecord{ID: "a"})
	c.append(dishRecord{ID: "b"})
	c.append(dishRecord{ID: "c"})

	assert.Equal(t, 1, c.findIndex("b"))
	assert.Equal(t, -1, c.findIndex("z"))

	c.removeAt(1)
	ids := []string{}
	for _, r := range c.list() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)

	listed := c.list()
	listed[0].Name = "changed"
	got, ok := c.find("a")
	assert.True(t, ok)
	assert.Empty(t, got.Name)
}

package banlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreAddAndList(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())

	first := Record{Username: "alpha", UserID: "1", Duration: "14d", BanDate: time.Now()}
	second := Record{Username: "beta", UserID: "2", Duration: "3h", BanDate: time.Now()}

	s.Add(first)
	s.Add(second)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Record{first, second}, s.List(), "records keep insertion order")
}

func TestStoreListIsSnapshot(t *testing.T) {
	s := NewStore()
	s.Add(Record{UserID: "1"})

	snapshot := s.List()
	snapshot[0].UserID = "changed"

	assert.Equal(t, "1", s.List()[0].UserID)
}

func TestStoreRemove(t *testing.T) {
	s := NewStore()
	s.Add(Record{Username: "alpha", UserID: "1"})
	s.Add(Record{Username: "beta", UserID: "2"})

	assert.True(t, s.Remove("1"))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "2", s.List()[0].UserID)
}

func TestStoreRemoveMissing(t *testing.T) {
	s := NewStore()
	s.Add(Record{UserID: "1"})

	assert.False(t, s.Remove("42"))
	assert.Equal(t, 1, s.Len(), "store unchanged on miss")
}

// Duplicate bans on the same id are not deduplicated, Remove only takes
// out the first match.
func TestStoreRemoveFirstOfDuplicates(t *testing.T) {
	s := NewStore()
	s.Add(Record{UserID: "1", Reason: "first"})
	s.Add(Record{UserID: "1", Reason: "second"})

	assert.True(t, s.Remove("1"))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "second", s.List()[0].Reason)
}

package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_PutGet(t *testing.T) {
	c := New(3)

	c.Put("a", "1")
	c.Put("b", "2")
	c.Put("c", "3")

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLRU_Eviction(t *testing.T) {
	c := New(2)

	c.Put("a", "1")
	c.Put("b", "2")
	c.Put("c", "3") // evicts "a"

	_, ok := c.Get("a")
	assert.False(t, ok, "a should have been evicted")

	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	v, ok = c.Get("c")
	require.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestLRU_PromotionOnGet(t *testing.T) {
	c := New(2)

	c.Put("a", "1")
	c.Put("b", "2")
	c.Get("a") // promotes a, b is now LRU
	c.Put("c", "3")

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")

	snap := c.TakeSnapshot()
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "c", snap.Entries[0].Key)
	assert.Equal(t, "a", snap.Entries[1].Key)
}

func TestLRU_PutReplacesAndPromotes(t *testing.T) {
	c := New(2)

	c.Put("a", "1")
	c.Put("b", "2")
	c.Put("a", "new") // a already present, replace + promote

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "new", v)

	snap := c.TakeSnapshot()
	assert.Equal(t, "a", snap.Entries[0].Key)
}

func TestLRU_Remove(t *testing.T) {
	c := New(2)

	c.Put("a", "1")
	c.Remove("a")

	_, ok := c.Get("a")
	assert.False(t, ok)

	// removing a missing key is a no-op
	c.Remove("a")
	c.Remove("never-existed")
}

func TestLRU_ZeroCapacityStoresNothing(t *testing.T) {
	c := New(0)

	c.Put("a", "1")

	_, ok := c.Get("a")
	assert.False(t, ok)

	snap := c.TakeSnapshot()
	assert.Equal(t, 0, snap.CurrentSize)
	assert.Equal(t, 0, snap.MaxSize)
}

func TestLRU_SnapshotOrderAndCapacity(t *testing.T) {
	c := New(5)

	snap := c.TakeSnapshot()
	assert.Equal(t, 0, snap.CurrentSize)
	assert.Equal(t, 5, snap.MaxSize)
	assert.Empty(t, snap.Entries)

	c.Put("a", "1")
	c.Put("b", "2")
	c.Put("c", "3")

	snap = c.TakeSnapshot()
	require.Len(t, snap.Entries, 3)
	assert.Equal(t, []Entry{
		{Key: "c", Value: "3"},
		{Key: "b", Value: "2"},
		{Key: "a", Value: "1"},
	}, snap.Entries)
}

func TestLRU_CapacityOne(t *testing.T) {
	c := New(1)

	c.Put("a", "1")
	c.Put("b", "2")

	_, ok := c.Get("a")
	assert.False(t, ok)

	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := New(50)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%26))
			c.Put(key, key)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	snap := c.TakeSnapshot()
	assert.LessOrEqual(t, snap.CurrentSize, 50)
}

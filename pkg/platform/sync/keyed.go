package sync

import (
	"hash/fnv"
	"sync"
)

// KeyedMutex serializes operations on a per-key basis using sharded mutexes.
// Callers locking different keys usually proceed in parallel; callers locking
// the same key are strictly serialized. Two distinct keys may share a shard,
// which trades a little false contention for a fixed memory footprint.
type KeyedMutex struct {
	shards [64]sync.Mutex
}

// NewKeyedMutex returns an empty KeyedMutex ready for use.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{}
}

// Lock acquires the shard owning key.
func (m *KeyedMutex) Lock(key string) {
	m.shards[m.shardFor(key)].Lock()
}

// Unlock releases the shard owning key.
func (m *KeyedMutex) Unlock(key string) {
	m.shards[m.shardFor(key)].Unlock()
}

// With runs fn while holding the shard for key.
func (m *KeyedMutex) With(key string, fn func()) {
	m.Lock(key)
	defer m.Unlock(key)
	fn()
}

func (m *KeyedMutex) shardFor(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(m.shards)))
}

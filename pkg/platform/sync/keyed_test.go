package sync

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSerializesSameKey(t *testing.T) {
	m := NewKeyedMutex()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.With("req_1", func() {
				counter++
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestDistinctKeysDoNotDeadlock(t *testing.T) {
	m := NewKeyedMutex()

	m.Lock("a")
	done := make(chan struct{})
	go func() {
		// "b" may share a shard with "a"; holding then releasing "a" below
		// guarantees progress either way.
		m.With("b", func() {})
		close(done)
	}()
	m.Unlock("a")
	<-done
}

func TestShardStableForKey(t *testing.T) {
	m := NewKeyedMutex()
	assert.Equal(t, m.shardFor("req_42"), m.shardFor("req_42"))
}

package usecase

import (
	"hash/fnv"
	"sync"
)

const lockShards = 64

// tripLocks serializes per-trip mutation without a global lock. Writes for
// the same trip always hash to the same shard; cross-trip operations stay
// parallel (modulo shard collisions).
type tripLocks struct {
	shards [lockShards]sync.Mutex
}

func newTripLocks() *tripLocks {
	return &tripLocks{}
}

// Lock acquires the shard for the given trip id and returns the unlock func
func (l *tripLocks) Lock(tripID string) func() {
	h := fnv.New32a()
	h.Write([]byte(tripID))
	m := &l.shards[h.Sum32()%lockShards]
	m.Lock()
	return m.Unlock
}

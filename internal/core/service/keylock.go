package service

import (
	"hash/fnv"
	"sync"
)

const lockShards = 64

// keyLocks serializes cart mutations per user key. Keys are hashed onto a
// fixed set of mutex shards, so two requests for the same user always contend
// on the same lock and the read-modify-write cycle on a cart document cannot
// interleave destructively within this process.
type keyLocks struct {
	shards [lockShards]sync.Mutex
}

func newKeyLocks() *keyLocks {
	return &keyLocks{}
}

// Lock acquires the shard for key and returns the matching unlock func.
func (l *keyLocks) Lock(key string) func() {
	m := &l.shards[shardIndex(key)]
	m.Lock()
	return m.Unlock
}

// shardIndex maps a key deterministically to a mutex shard.
func shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % lockShards)
}

package health

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const lockStripes = 64

// stripedLock serializes work per character name without a global lock.
// Names hashing to the same stripe share a mutex.
type stripedLock struct {
	stripes [lockStripes]sync.Mutex
}

func (l *stripedLock) lock(name string) func() {
	m := &l.stripes[xxhash.Sum64String(Key(name))%lockStripes]
	m.Lock()
	return m.Unlock
}

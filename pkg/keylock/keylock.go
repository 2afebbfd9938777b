package keylock

import (
	"sync"

	"github.com/twmb/murmur3"
)

// KeyLock is a fixed set of mutexes, a key always maps to the same stripe.
// Two different keys can share a stripe, so never acquire two keys at the same time.
type KeyLock struct {
	stripes []sync.Mutex
	mask    uint32
}

// New creates a KeyLock with the number of stripes rounded up to a power of two
func New(numStripes int) *KeyLock {
	size := 1
	for size < numStripes {
		size <<= 1
	}
	return &KeyLock{
		stripes: make([]sync.Mutex, size),
		mask:    uint32(size - 1),
	}
}

func (l *KeyLock) stripe(key string) *sync.Mutex {
	return &l.stripes[murmur3.Sum32([]byte(key))&l.mask]
}

// Lock returns the unlock function
func (l *KeyLock) Lock(key string) func() {
	mu := l.stripe(key)
	mu.Lock()
	return mu.Unlock
}

package memtable

import (
	"encoding/binary"
	"time"

	"github.com/QuangTung97/customer-ban/model"
	"github.com/coocood/freecache"
)

// StatusCache caches customer statuses inside the process, entries may be evicted at any time
type StatusCache struct {
	cache *freecache.Cache
}

// New creates freecache with size in bytes
func New(size int) *StatusCache {
	return &StatusCache{
		cache: freecache.NewCache(size),
	}
}

// GetStatus ...
func (m *StatusCache) GetStatus(customerID string) (status model.CustomerStatus, ok bool) {
	data, err := m.cache.Get([]byte(customerID))
	if err != nil {
		return 0, false
	}
	if len(data) < 8 {
		return 0, false
	}
	return model.CustomerStatus(binary.LittleEndian.Uint64(data)), true
}

// SetStatus stores the status, a ttl shorter than one second is not cached
func (m *StatusCache) SetStatus(customerID string, status model.CustomerStatus, ttl time.Duration) {
	seconds := int(ttl / time.Second)
	if seconds <= 0 {
		return
	}

	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], uint64(status))
	_ = m.cache.Set([]byte(customerID), data[:], seconds)
}

// Invalidate ...
func (m *StatusCache) Invalidate(customerID string) {
	m.cache.Del([]byte(customerID))
}

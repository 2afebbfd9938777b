package memtable

import (
	"testing"
	"time"

	"github.com/QuangTung97/customer-ban/model"
	"github.com/stretchr/testify/assert"
)

func TestStatusCache(t *testing.T) {
	m := New(512 * 1024)

	m.SetStatus("c01", model.CustomerStatusActive, 10*time.Second)
	m.SetStatus("c02", model.CustomerStatusBanned, 10*time.Second)

	status, ok := m.GetStatus("c01")
	assert.Equal(t, true, ok)
	assert.Equal(t, model.CustomerStatusActive, status)

	status, ok = m.GetStatus("c02")
	assert.Equal(t, true, ok)
	assert.Equal(t, model.CustomerStatusBanned, status)

	status, ok = m.GetStatus("c03")
	assert.Equal(t, false, ok)
	assert.Equal(t, model.CustomerStatus(0), status)

	_ = m.cache.Set([]byte("c04"), []byte("aa"), 0)
	status, ok = m.GetStatus("c04")
	assert.Equal(t, false, ok)
	assert.Equal(t, model.CustomerStatus(0), status)
}

func TestStatusCache__Invalidate(t *testing.T) {
	m := New(512 * 1024)

	m.SetStatus("c01", model.CustomerStatusBanned, 10*time.Second)
	m.Invalidate("c01")

	_, ok := m.GetStatus("c01")
	assert.Equal(t, false, ok)
}

func TestStatusCache__TTL_Below_One_Second_Not_Cached(t *testing.T) {
	m := New(512 * 1024)

	m.SetStatus("c01", model.CustomerStatusBanned, 900*time.Millisecond)

	_, ok := m.GetStatus("c01")
	assert.Equal(t, false, ok)
}

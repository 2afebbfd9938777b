package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew__Round_Up_Power_Of_Two(t *testing.T) {
	assert.Equal(t, 1, len(New(0).stripes))
	assert.Equal(t, 1, len(New(1).stripes))
	assert.Equal(t, 4, len(New(3).stripes))
	assert.Equal(t, 64, len(New(64).stripes))
	assert.Equal(t, uint32(63), New(64).mask)
}

func TestKeyLock__Same_Key_Same_Stripe(t *testing.T) {
	l := New(64)
	assert.Same(t, l.stripe("customer01"), l.stripe("customer01"))
}

func TestKeyLock__Serialize_Same_Key(t *testing.T) {
	l := New(16)

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 100; k++ {
				unlock := l.Lock("customer01")
				counter++
				unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5000, counter)
}

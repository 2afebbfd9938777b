package cacheclient

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newClient(t *testing.T) *Client {
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("set INTEGRATION_TEST to run against memcached")
	}

	c := New("localhost:11211", 1)
	t.Cleanup(func() { _ = c.Close() })

	p := c.client.Pipeline()
	defer p.Finish()
	err := p.FlushAll()()
	if err != nil {
		panic(err)
	}
	return c
}

func TestClient_TryLock__Granted_Then_Rejected(t *testing.T) {
	c := newClient(t)

	release, ok, err := c.TryLock(context.Background(), "lock01")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ok)
	assert.NotNil(t, release)

	_, ok, err = c.TryLock(context.Background(), "lock01")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, ok)

	// other keys are independent
	_, ok, err = c.TryLock(context.Background(), "lock02")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ok)
}

func TestClient_TryLock__Granted_Again_After_Release(t *testing.T) {
	c := newClient(t)

	release, ok, err := c.TryLock(context.Background(), "lock01")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ok)

	release()

	_, ok, err = c.TryLock(context.Background(), "lock01")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ok)
}

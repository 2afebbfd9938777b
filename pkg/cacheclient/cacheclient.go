package cacheclient

import (
	"context"
	"time"

	"github.com/QuangTung97/go-memcache/memcache"
)

// LeaseTTLSeconds bounds how long a lock survives a crashed holder
const LeaseTTLSeconds = 300

// Client is a memcached backed lock using the lease mechanism of meta commands:
// the first miss is granted a lease (W flag), the following gets are rejected (Z flag)
// until the key is deleted or the lease item expires.
type Client struct {
	client *memcache.Client
}

// New ...
func New(addr string, numConns int) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
	}
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// TryLock does not block, acquired is false when another process holds the lease
func (c *Client) TryLock(_ context.Context, key string) (release func(), acquired bool, err error) {
	pipe := c.client.Pipeline()
	defer pipe.Finish()

	resp, err := pipe.MGet(key, memcache.MGetOptions{
		N:   LeaseTTLSeconds,
		CAS: true,
	})()
	if err != nil {
		return nil, false, err
	}

	if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagZ != 0 {
		return nil, false, nil
	}
	if resp.Flags&memcache.MGetFlagW == 0 {
		// a real value is stored under the lock key
		return nil, false, nil
	}

	release = func() {
		p := c.client.Pipeline()
		defer p.Finish()
		_, _ = p.MDel(key, memcache.MDelOptions{})()
	}
	return release, true, nil
}

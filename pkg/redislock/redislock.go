package redislock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only when it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker is a single-key redis lock with SET NX PX
type Locker struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// New ...
func New(client redis.UniversalClient, ttl time.Duration) *Locker {
	return &Locker{
		client: client,
		ttl:    ttl,
	}
}

// TryLock does not block, acquired is false when the key is held by someone else
func (l *Locker) TryLock(ctx context.Context, key string) (release func(), acquired bool, err error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	release = func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err()
	}
	return release, true, nil
}

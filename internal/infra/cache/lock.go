package cache

import (
	"context"
	"time"

	"gaming-zone-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrLockNotAcquired = errs.New("lock not acquired")
	ErrLockNotOwned    = errs.New("lock not owned")
)

const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end`

// Lock is a lease held in Redis. It expires on its own if the holder dies.
type Lock struct {
	client *redis.Client
	key    string
	token  string
}

type LockManager struct {
	client *redis.Client
}

func NewLockManager(client *redis.Client) *LockManager {
	return &LockManager{client: client}
}

func (m *LockManager) Acquire(ctx context.Context, name string, ttl time.Duration) (Releaser, error) {
	key := "lock:" + name
	token := uuid.NewString()

	ok, err := m.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, errs.Wrap(err, "acquire lock")
	}
	if !ok {
		return nil, ErrLockNotAcquired
	}
	return &Lock{client: m.client, key: key, token: token}, nil
}

func (l *Lock) Release(ctx context.Context) error {
	n, err := l.client.Eval(ctx, releaseScript, []string{l.key}, l.token).Int()
	if err != nil {
		return errs.Wrap(err, "release lock")
	}
	if n == 0 {
		return ErrLockNotOwned
	}
	return nil
}

type Releaser interface {
	Release(ctx context.Context) error
}

// LocalLocker grants every request; a single instance needs no coordination.
type LocalLocker struct{}

func (LocalLocker) Acquire(context.Context, string, time.Duration) (Releaser, error) {
	return localLease{}, nil
}

type localLease struct{}

func (localLease) Release(context.Context) error { return nil }

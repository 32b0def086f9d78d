package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

// Options configures the Redis client backing idempotency keys.
type Options struct {
	Addr        string
	Password    string
	DB          int
	PingTimeout time.Duration
}

// OpenRedis dials Redis and verifies the connection with a PING. The client
// is closed again when the ping fails.
func OpenRedis(ctx context.Context, opt Options) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: opt.Addr, Password: opt.Password, DB: opt.DB})

	timeout := opt.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opt.Addr, err)
	}
	return r, nil
}

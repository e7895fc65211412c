// Package redis wraps go-redis so spoiler storage can be swapped for an
// in-memory server under test.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/zone-rando/internal/errors"
)

// Options tunes the connection pool
type Options struct {
	Password    string
	DB          int
	PoolSize    int
	MaxRetries  int
	DialTimeout time.Duration
	UseTLS      bool
}

// NewClient creates a client for a single redis instance at addr
func NewClient(addr string, opts *Options) (Client, error) {
	if addr == "" {
		return nil, errors.InvalidArgument("redis: address is required")
	}
	if opts == nil {
		opts = &Options{}
	}
	if opts.DB < 0 {
		return nil, errors.InvalidArgumentf("redis: invalid database %d", opts.DB)
	}

	redisOpts := &redis.Options{
		Addr:        addr,
		Password:    opts.Password,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		MaxRetries:  opts.MaxRetries,
		DialTimeout: opts.DialTimeout,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(redisOpts), nil
}

// NewClientFromURL accepts redis:// and rediss:// URLs
func NewClientFromURL(url string) (Client, error) {
	if url == "" {
		return nil, errors.InvalidArgument("redis: url is required")
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "redis: invalid url")
	}

	return redis.NewClient(redisOpts), nil
}

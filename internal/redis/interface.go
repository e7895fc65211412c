package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories depend on. Both single
// node and cluster clients satisfy it.
type Client interface {
	redis.UniversalClient
}

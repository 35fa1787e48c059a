package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so callers depend on this package only
type Client interface {
	redis.UniversalClient
}

// Nil is returned by GET when the key does not exist
const Nil = redis.Nil

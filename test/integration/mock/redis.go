package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis starts an embedded miniredis server and returns a client
// connected to it. The server is shared across scenarios.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		redisConn = openRedisConn()
	})

	return redisConn
}

func openRedisConn() *redis.Client {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(&redis.Options{
		Addr: server.Addr(),
	})
}

// ClearRedis flushes all keys, including rate limiter counters and
// cached holiday calendars.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}

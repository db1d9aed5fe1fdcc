package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

// newTestRedisClient starts an in-process redis and returns a client bound
// to it. Both are torn down with the test.
func newTestRedisClient(t *testing.T) (*goredis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}

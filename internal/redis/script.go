package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// createIndexed writes KEYS[1] only when absent and appends ARGV[2] to the
// KEYS[2] list in the same step. Returns 1 when created, 0 when the key
// already existed.
var createIndexed = redis.NewScript(`
if redis.call('SET', KEYS[1], ARGV[1], 'NX') then
	redis.call('RPUSH', KEYS[2], ARGV[2])
	return 1
end
return 0
`)

// CreateIndexed stores data under key and appends id to indexKey atomically.
// It reports false without touching the index when key already exists.
func CreateIndexed(ctx context.Context, client Client, key, indexKey string, data []byte, id string) (bool, error) {
	n, err := createIndexed.Run(ctx, client, []string{key, indexKey}, data, id).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

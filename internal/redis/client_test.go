package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/redis"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	t.Run("connects", func(t *testing.T) {
		client, err := redis.NewClient(mr.Addr(), nil)
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
		got, err := mr.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("requires an address", func(t *testing.T) {
		_, err := redis.NewClient("", nil)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("rejects a negative database", func(t *testing.T) {
		_, err := redis.NewClient(mr.Addr(), &redis.Options{DB: -1})
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestNewClientFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClientFromURL("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()
	require.NoError(t, client.Ping(context.Background()).Err())

	_, err = redis.NewClientFromURL("")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = redis.NewClientFromURL("http://nope")
	assert.True(t, errors.IsInvalidArgument(err))
}

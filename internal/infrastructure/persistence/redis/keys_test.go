package redis

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "session:42", sessionKey(42))
	assert.Equal(t, "blacklist:abc.def", blacklistKey("abc.def"))
	assert.Equal(t, "cart:9f2c", cartKey("9f2c"))
}

func TestCartStore_EmptyCartID(t *testing.T) {
	// 没有购物车ID时不访问Redis
	store := NewCartStore(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}))

	ok, err := store.HasItem(context.Background(), "", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

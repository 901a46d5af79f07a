package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

// CartStore 购物车只读视图
// 购物车由购物车服务维护，这里只查询商品是否已加入：
// cart:{cart_id} 是商品ID的Set
type CartStore struct {
	client *redis.Client
}

// NewCartStore 创建购物车查询
func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

// HasItem 购物车中是否有该商品，没有购物车ID时返回false
func (s *CartStore) HasItem(ctx context.Context, cartID string, productID uint) (bool, error) {
	if cartID == "" {
		return false, nil
	}

	ok, err := s.client.SIsMember(ctx, cartKey(cartID), productID).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "查询购物车失败")
	}
	return ok, nil
}

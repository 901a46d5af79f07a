// Package cart 购物车子系统在本服务中的边界
// 商品详情页只需要知道"当前购物车里有没有这个商品"
package cart

import (
	"context"
)

// Checker 购物车成员查询
type Checker interface {
	// HasItem cartID为空时返回false
	HasItem(ctx context.Context, cartID string, productID uint) (bool, error)
}

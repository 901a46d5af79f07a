package review

import (
	"context"
)

// Repository 评价仓储接口
type Repository interface {
	// Create (user_id, product_id)重复时返回ErrDuplicateReview
	Create(ctx context.Context, r *Review) error

	Update(ctx context.Context, r *Review) error

	Delete(ctx context.Context, id uint) error

	// FindByID 不存在时返回ErrReviewNotFound
	FindByID(ctx context.Context, id uint) (*Review, error)

	// ExistsByUserAndProduct 用户是否已评价该商品
	ExistsByUserAndProduct(ctx context.Context, userID, productID uint) (bool, error)

	// ListByProduct 商品的全部评价，按ID升序
	ListByProduct(ctx context.Context, productID uint) ([]*Review, error)

	// DeleteByProduct 删除商品的全部评价
	DeleteByProduct(ctx context.Context, productID uint) error
}

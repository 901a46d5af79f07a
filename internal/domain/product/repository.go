package product

import (
	"context"
)

// Order 列表排序方式
type Order int

const (
	OrderIDAsc Order = iota
	OrderIDDesc
	OrderCreatedDesc
)

// ListFilter 列表过滤条件，零值表示不过滤
type ListFilter struct {
	CategoryID *uint
	OwnerID    *uint
	Keyword    string // 名称或描述包含关键词（不区分大小写）
	OnlyListed bool   // 只返回已上架且已审核的商品
	OrderBy    Order
}

// Repository 商品仓储接口
type Repository interface {
	// Create 名称或Slug重复时返回ErrProductDuplicate
	Create(ctx context.Context, p *Product) error

	// Update 名称或Slug重复时返回ErrProductDuplicate
	Update(ctx context.Context, p *Product) error

	// Delete 物理删除商品（规格和评价由调用方在同一事务内删除）
	Delete(ctx context.Context, id uint) error

	// FindByID 不存在时返回ErrProductNotFound
	FindByID(ctx context.Context, id uint) (*Product, error)

	// FindBySlug 按分类+Slug查找，不存在时返回ErrProductNotFound
	FindBySlug(ctx context.Context, categoryID uint, slug string) (*Product, error)

	// Count 过滤后的总数
	Count(ctx context.Context, filter ListFilter) (int64, error)

	// Find 过滤后的一页数据，limit<=0表示不分页
	Find(ctx context.Context, filter ListFilter, offset, limit int) ([]*Product, error)
}

// VariationRepository 商品规格仓储接口
type VariationRepository interface {
	Create(ctx context.Context, v *Variation) error

	// FindByID 不存在时返回ErrVariationNotFound
	FindByID(ctx context.Context, id uint) (*Variation, error)

	Update(ctx context.Context, v *Variation) error

	// ListActive 商品某一类型的启用规格
	ListActive(ctx context.Context, productID uint, category VariationCategory) ([]*Variation, error)

	// DeleteByProduct 删除商品的全部规格
	DeleteByProduct(ctx context.Context, productID uint) error
}

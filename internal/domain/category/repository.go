package category

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	// Create 名称或Slug重复时返回ErrCategoryDuplicate
	Create(ctx context.Context, c *Category) error

	// FindByID 不存在时返回ErrCategoryNotFound
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindBySlug 不存在时返回ErrCategoryNotFound
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// List 按名称排序返回全部分类
	List(ctx context.Context) ([]*Category, error)
}

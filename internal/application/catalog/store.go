package catalog

import (
	"context"

	"github.com/xiebiao/marketplace/internal/domain/category"
	"github.com/xiebiao/marketplace/internal/domain/product"
	"github.com/xiebiao/marketplace/pkg/pagination"
)

// StoreListUseCase 商店首页与分类列表
// 只展示已上架且已审核的商品，按ID升序分页
type StoreListUseCase struct {
	productService product.Service
	categoryRepo   category.Repository
	pageSize       int
}

// NewStoreListUseCase 创建商店列表用例
func NewStoreListUseCase(productService product.Service, categoryRepo category.Repository, opts Options) *StoreListUseCase {
	return &StoreListUseCase{
		productService: productService,
		categoryRepo:   categoryRepo,
		pageSize:       opts.PageSize,
	}
}

// StoreListRequest 列表请求
type StoreListRequest struct {
	CategorySlug string // 为空表示全部分类
	Page         string // 原始页码参数，非法值按第一页处理
}

// StoreListResult 列表结果
type StoreListResult struct {
	Category     *CategoryInfo
	Products     []ProductItem
	Page         *pagination.Page
	ProductCount int64
}

// Execute 分类不存在时返回category.ErrCategoryNotFound
func (uc *StoreListUseCase) Execute(ctx context.Context, req StoreListRequest) (*StoreListResult, error) {
	filter := product.ListFilter{OrderBy: product.OrderIDAsc}

	var info *CategoryInfo
	if req.CategorySlug != "" {
		cat, err := uc.categoryRepo.FindBySlug(ctx, req.CategorySlug)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = &cat.ID
		info = newCategoryInfo(cat)
	}

	products, page, err := uc.productService.List(ctx, filter, req.Page, uc.pageSize)
	if err != nil {
		return nil, err
	}

	return &StoreListResult{
		Category:     info,
		Products:     NewProductItems(products),
		Page:         page,
		ProductCount: page.Total,
	}, nil
}

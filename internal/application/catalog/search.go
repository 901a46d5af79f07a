package catalog

import (
	"context"
	"strings"

	"github.com/xiebiao/marketplace/internal/domain/product"
)

// SearchUseCase 关键词搜索
// 名称或描述包含关键词（不区分大小写），最新发布的在前
type SearchUseCase struct {
	productService product.Service
}

// NewSearchUseCase 创建搜索用例
func NewSearchUseCase(productService product.Service) *SearchUseCase {
	return &SearchUseCase{productService: productService}
}

// SearchResult 搜索结果
type SearchResult struct {
	Keyword      string        `json:"keyword"`
	Products     []ProductItem `json:"products"`
	ProductCount int           `json:"product_count"`
}

// Execute 空关键词由调用方处理（跳转回商店首页）
func (uc *SearchUseCase) Execute(ctx context.Context, keyword string) (*SearchResult, error) {
	keyword = strings.TrimSpace(keyword)

	products, err := uc.productService.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Keyword:      keyword,
		Products:     NewProductItems(products),
		ProductCount: len(products),
	}, nil
}

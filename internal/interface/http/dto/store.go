package dto

import (
	"github.com/xiebiao/marketplace/internal/application/catalog"
	"github.com/xiebiao/marketplace/pkg/response"
)

// StoreResponse 商店列表，category为空表示全部分类
type StoreResponse struct {
	Category     *catalog.CategoryInfo `json:"category,omitempty"`
	Products     *response.PageData    `json:"products"`
	ProductCount int64                 `json:"product_count"`
}

// NewStoreResponse 应用层结果 → HTTP响应
func NewStoreResponse(r *catalog.StoreListResult) *StoreResponse {
	return &StoreResponse{
		Category:     r.Category,
		Products:     response.NewPageData(r.Products, r.Page),
		ProductCount: r.ProductCount,
	}
}

// SellerResponse 卖家主页
type SellerResponse struct {
	Seller       catalog.SellerInfo `json:"seller"`
	Products     *response.PageData `json:"products"`
	ProductCount int64              `json:"product_count"`
}

// NewSellerResponse 应用层结果 → HTTP响应
func NewSellerResponse(r *catalog.SellerProfileResult) *SellerResponse {
	return &SellerResponse{
		Seller:       r.Seller,
		Products:     response.NewPageData(r.Products, r.Page),
		ProductCount: r.ProductCount,
	}
}

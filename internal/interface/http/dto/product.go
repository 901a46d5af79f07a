package dto

import (
	"github.com/shopspring/decimal"

	appproduct "github.com/xiebiao/marketplace/internal/application/product"
)

// ProductRequest 商品表单
// 字段都可以缺省，缺失和取值错误统一由domain层返回字段级错误
type ProductRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         *int64           `json:"price" swaggertype:"integer"`
	DiscountPrice *decimal.Decimal `json:"discount_price" swaggertype:"string" example:"79.50"`
	ImageURL      string           `json:"image_url"`
	Stock         *int             `json:"stock" swaggertype:"integer"`
	CategoryID    uint             `json:"category_id"`
	Status        *bool            `json:"status" swaggertype:"boolean"`
}

// ToApp HTTP DTO → 应用层请求
func (r ProductRequest) ToApp() appproduct.ProductRequest {
	return appproduct.ProductRequest{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		DiscountPrice: r.DiscountPrice,
		ImageURL:      r.ImageURL,
		Stock:         r.Stock,
		CategoryID:    r.CategoryID,
		Status:        r.Status,
	}
}

// StatusRequest 上下架
type StatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ApprovalRequest 审核
type ApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// VariationRequest 新增规格
type VariationRequest struct {
	Category string `json:"category" binding:"required" enums:"color,size"`
	Value    string `json:"value"`
}

// VariationActiveRequest 启用/停用规格
type VariationActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// CategoryRequest 新建分类
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

package catalog

import (
	"github.com/xiebiao/marketplace/internal/domain/category"
	"github.com/xiebiao/marketplace/internal/domain/product"
)

const timeLayout = "2006-01-02 15:04:05"

// Options 列表分页配置
type Options struct {
	PageSize       int // 商店与分类列表每页数量
	SellerPageSize int // 卖家主页每页数量
}

// ProductItem 商品列表项与详情共用的DTO
type ProductItem struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	Description    string  `json:"description"`
	Price          int64   `json:"price"`
	DiscountPrice  *string `json:"discount_price"`
	EffectivePrice string  `json:"effective_price"`
	ImageURL       string  `json:"image_url"`
	Stock          int     `json:"stock"`
	Status         bool    `json:"status"`
	IsApproved     bool    `json:"is_approved"`
	CategoryID     uint    `json:"category_id"`
	CategorySlug   string  `json:"category_slug"`
	OwnerID        *uint   `json:"owner_id"`
	URL            string  `json:"url"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// NewProductItem 领域实体 → DTO
func NewProductItem(p *product.Product) ProductItem {
	item := ProductItem{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Price:          p.Price,
		EffectivePrice: p.EffectivePrice().StringFixed(2),
		ImageURL:       p.ImageURL,
		Stock:          p.Stock,
		Status:         p.Status,
		IsApproved:     p.IsApproved,
		CategoryID:     p.CategoryID,
		CategorySlug:   p.CategorySlug,
		OwnerID:        p.OwnerID,
		URL:            p.URL(),
		CreatedAt:      p.CreatedAt.Format(timeLayout),
		UpdatedAt:      p.UpdatedAt.Format(timeLayout),
	}
	if p.DiscountPrice != nil {
		s := p.DiscountPrice.StringFixed(2)
		item.DiscountPrice = &s
	}
	return item
}

// NewProductItems 批量转换
func NewProductItems(products []*product.Product) []ProductItem {
	items := make([]ProductItem, len(products))
	for i, p := range products {
		items[i] = NewProductItem(p)
	}
	return items
}

// CategoryInfo 分类DTO
type CategoryInfo struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func newCategoryInfo(c *category.Category) *CategoryInfo {
	return &CategoryInfo{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

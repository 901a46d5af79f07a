package product

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/marketplace/internal/domain/user"
)

// Product 商品实体（聚合根）
// 设计说明：
// 1. Price以整数存储（与原价一致），DiscountPrice是可选的小数
// 2. Status是上下架开关，IsApproved是审核开关，两者互相独立
// 3. 只有Status && IsApproved的商品出现在公开列表中
type Product struct {
	ID            uint
	OwnerID       *uint // 历史数据或后台创建的商品没有所有者
	Name          string
	Slug          string
	Description   string
	Price         int64
	DiscountPrice *decimal.Decimal
	ImageURL      string
	Stock         int
	Status        bool
	CategoryID    uint
	CategorySlug  string // 由仓储加载，用于拼接详情页地址
	IsApproved    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOwnedBy 是否属于指定用户
func (p *Product) IsOwnedBy(userID uint) bool {
	return p.OwnerID != nil && userID != 0 && *p.OwnerID == userID
}

// CanBeManagedBy 所有者或运营人员可以修改、删除、上下架
func (p *Product) CanBeManagedBy(r user.Requester) bool {
	return r.IsStaff || p.IsOwnedBy(r.UserID)
}

// VisibleTo 详情页可见性：已审核商品对所有人可见，未审核商品只对所有者和运营可见
func (p *Product) VisibleTo(r user.Requester) bool {
	return p.IsApproved || p.CanBeManagedBy(r)
}

// IsListed 是否出现在公开列表
func (p *Product) IsListed() bool {
	return p.Status && p.IsApproved
}

// URL 商品详情页地址
func (p *Product) URL() string {
	return fmt.Sprintf("/api/v1/store/category/%s/%s", p.CategorySlug, p.Slug)
}

// EffectivePrice 实际售价：有折扣价时取折扣价
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return decimal.NewFromInt(p.Price)
}

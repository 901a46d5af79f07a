package catalog

import (
	"context"

	"github.com/xiebiao/marketplace/internal/domain/product"
	"github.com/xiebiao/marketplace/internal/domain/user"
	"github.com/xiebiao/marketplace/pkg/pagination"
)

// SellerProfileUseCase 卖家主页
// 展示卖家已上架且已审核的商品，最新的在前
type SellerProfileUseCase struct {
	userRepo       user.Repository
	productService product.Service
	pageSize       int
}

// NewSellerProfileUseCase 创建卖家主页用例
func NewSellerProfileUseCase(userRepo user.Repository, productService product.Service, opts Options) *SellerProfileUseCase {
	return &SellerProfileUseCase{
		userRepo:       userRepo,
		productService: productService,
		pageSize:       opts.SellerPageSize,
	}
}

// SellerInfo 卖家公开信息
type SellerInfo struct {
	ID          uint   `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	JoinedAt    string `json:"joined_at"`
}

// SellerProfileResult 卖家主页结果
type SellerProfileResult struct {
	Seller       SellerInfo
	Products     []ProductItem
	Page         *pagination.Page
	ProductCount int64
}

// Execute 卖家不存在时返回errors.ErrUserNotFound
func (uc *SellerProfileUseCase) Execute(ctx context.Context, sellerID uint, rawPage string) (*SellerProfileResult, error) {
	seller, err := uc.userRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	products, page, err := uc.productService.List(ctx, product.ListFilter{
		OwnerID: &seller.ID,
		OrderBy: product.OrderIDDesc,
	}, rawPage, uc.pageSize)
	if err != nil {
		return nil, err
	}

	return &SellerProfileResult{
		Seller: SellerInfo{
			ID:          seller.ID,
			DisplayName: seller.DisplayName(),
			Email:       seller.Email,
			JoinedAt:    seller.CreatedAt.Format(timeLayout),
		},
		Products:     NewProductItems(products),
		Page:         page,
		ProductCount: page.Total,
	}, nil
}

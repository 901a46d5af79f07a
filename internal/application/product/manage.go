package product

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/marketplace/internal/application/catalog"
	"github.com/xiebiao/marketplace/internal/domain/product"
	"github.com/xiebiao/marketplace/internal/domain/user"
)

// ProductRequest 商品表单（创建与编辑共用）
type ProductRequest struct {
	Name          string
	Description   string
	Price         *int64
	DiscountPrice *decimal.Decimal
	ImageURL      string
	Stock         *int
	CategoryID    uint
	Status        *bool
}

func (r ProductRequest) input() product.Input {
	return product.Input{
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

// Result 变更结果
type Result struct {
	Redirect string
	Product  *catalog.ProductItem
}

func newResult(p *product.Product) *Result {
	item := catalog.NewProductItem(p)
	return &Result{Redirect: p.URL(), Product: &item}
}

// CreateProductUseCase 卖家发布商品
// 新商品进入待审核状态，审核通过前只有卖家本人和运营能看到
type CreateProductUseCase struct {
	productService product.Service
}

// NewCreateProductUseCase 创建发布商品用例
func NewCreateProductUseCase(productService product.Service) *CreateProductUseCase {
	return &CreateProductUseCase{productService: productService}
}

// Execute 当前登录用户作为商品所有者
func (uc *CreateProductUseCase) Execute(ctx context.Context, r user.Requester, req ProductRequest) (*Result, error) {
	ownerID := r.UserID
	p, err := uc.productService.CreateProduct(ctx, &ownerID, req.input())
	if err != nil {
		return nil, err
	}
	return newResult(p), nil
}

// UpdateProductUseCase 编辑商品
type UpdateProductUseCase struct {
	productService product.Service
}

// NewUpdateProductUseCase 创建编辑商品用例
func NewUpdateProductUseCase(productService product.Service) *UpdateProductUseCase {
	return &UpdateProductUseCase{productService: productService}
}

// Execute 所有者或运营可以编辑，审核状态不受影响
func (uc *UpdateProductUseCase) Execute(ctx context.Context, r user.Requester, id uint, req ProductRequest) (*Result, error) {
	p, err := uc.productService.UpdateProduct(ctx, r, id, req.input())
	if err != nil {
		return nil, err
	}
	return newResult(p), nil
}

// ModerateProductUseCase 上下架与审核
type ModerateProductUseCase struct {
	productService product.Service
}

// NewModerateProductUseCase 创建审核用例
func NewModerateProductUseCase(productService product.Service) *ModerateProductUseCase {
	return &ModerateProductUseCase{productService: productService}
}

// SetStatus 所有者或运营上下架
func (uc *ModerateProductUseCase) SetStatus(ctx context.Context, r user.Requester, id uint, active bool) (*Result, error) {
	p, err := uc.productService.SetStatus(ctx, r, id, active)
	if err != nil {
		return nil, err
	}
	return newResult(p), nil
}

// SetApproval 运营审核
func (uc *ModerateProductUseCase) SetApproval(ctx context.Context, r user.Requester, id uint, approved bool) (*Result, error) {
	p, err := uc.productService.SetApproval(ctx, r, id, approved)
	if err != nil {
		return nil, err
	}
	return newResult(p), nil
}

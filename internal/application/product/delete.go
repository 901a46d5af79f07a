package product

import (
	"context"

	"github.com/xiebiao/marketplace/internal/domain/product"
	"github.com/xiebiao/marketplace/internal/domain/review"
	"github.com/xiebiao/marketplace/internal/domain/user"
)

// TxManager 事务管理器
// fn内的仓储操作在同一事务中执行，fn返回error时回滚
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DeleteProductUseCase 删除商品
// 商品、规格、评价在同一事务内删除
type DeleteProductUseCase struct {
	productService product.Service
	productRepo    product.Repository
	variationRepo  product.VariationRepository
	reviewRepo     review.Repository
	txManager      TxManager
}

// NewDeleteProductUseCase 创建删除商品用例
func NewDeleteProductUseCase(
	productService product.Service,
	productRepo product.Repository,
	variationRepo product.VariationRepository,
	reviewRepo review.Repository,
	txManager TxManager,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productService: productService,
		productRepo:    productRepo,
		variationRepo:  variationRepo,
		reviewRepo:     reviewRepo,
		txManager:      txManager,
	}
}

// DeleteResult 删除后跳转到卖家主页
type DeleteResult struct {
	Redirect string
}

// Execute 所有者或运营可以删除
func (uc *DeleteProductUseCase) Execute(ctx context.Context, r user.Requester, id uint) (*DeleteResult, error) {
	p, err := uc.productService.Authorize(ctx, r, id)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.variationRepo.DeleteByProduct(txCtx, p.ID); err != nil {
			return err
		}
		if err := uc.reviewRepo.DeleteByProduct(txCtx, p.ID); err != nil {
			return err
		}
		return uc.productRepo.Delete(txCtx, p.ID)
	})
	if err != nil {
		return nil, err
	}

	redirect := "/api/v1/store"
	if p.OwnerID != nil {
		redirect = sellerURL(*p.OwnerID)
	}
	return &DeleteResult{Redirect: redirect}, nil
}

package product

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/marketplace/internal/application/catalog"
	appreview "github.com/xiebiao/marketplace/internal/application/review"
	"github.com/xiebiao/marketplace/internal/domain/cart"
	"github.com/xiebiao/marketplace/internal/domain/product"
	"github.com/xiebiao/marketplace/internal/domain/review"
	"github.com/xiebiao/marketplace/internal/domain/user"
	"github.com/xiebiao/marketplace/pkg/tracing"
)

const tracerName = "marketplace/application/product"

// ProductDetailUseCase 商品详情页
// 汇总商品、启用中的规格、评价列表、购物车状态和评价表单状态
type ProductDetailUseCase struct {
	productService product.Service
	reviewService  review.Service
	userRepo       user.Repository
	cart           cart.Checker
	logger         *zap.Logger
}

// NewProductDetailUseCase 创建商品详情用例
func NewProductDetailUseCase(
	productService product.Service,
	reviewService review.Service,
	userRepo user.Repository,
	cartChecker cart.Checker,
	logger *zap.Logger,
) *ProductDetailUseCase {
	return &ProductDetailUseCase{
		productService: productService,
		reviewService:  reviewService,
		userRepo:       userRepo,
		cart:           cartChecker,
		logger:         logger,
	}
}

// DetailRequest 详情请求
type DetailRequest struct {
	Requester    user.Requester
	CategorySlug string
	ProductSlug  string
	CartID       string
	EditReviewID *uint           // 正在编辑的评价
	PendingForm  *appreview.Form // 提交失败的表单，原样回显
}

// Detail 详情页数据
type Detail struct {
	Product      catalog.ProductItem `json:"product"`
	Colors       []*VariationInfo    `json:"colors"`
	Sizes        []*VariationInfo    `json:"sizes"`
	Reviews      []*appreview.Item   `json:"reviews"`
	InCart       bool                `json:"in_cart"`
	HasReviewed  bool                `json:"has_reviewed"`
	EditReviewID *uint               `json:"edit_review_id"`
	Form         *appreview.Form     `json:"form"`
}

// Execute 商品不可见时返回product.ErrProductNotFound
// 指定了EditReviewID时，该评价必须属于当前用户
func (uc *ProductDetailUseCase) Execute(ctx context.Context, req DetailRequest) (*Detail, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ProductDetail")
	defer span.End()

	p, err := uc.productService.GetVisible(ctx, req.Requester, req.CategorySlug, req.ProductSlug)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("product.id", int64(p.ID)))

	colors, sizes, err := uc.productService.Variations(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviewService.ListByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	hasReviewed, err := uc.reviewService.HasReviewed(ctx, req.Requester, p.ID)
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		Product:      catalog.NewProductItem(p),
		Colors:       newVariationInfos(colors),
		Sizes:        newVariationInfos(sizes),
		Reviews:      uc.reviewItems(ctx, reviews),
		InCart:       uc.inCart(ctx, req.CartID, p.ID),
		HasReviewed:  hasReviewed,
		EditReviewID: req.EditReviewID,
		Form:         &appreview.Form{},
	}

	switch {
	case req.PendingForm != nil:
		detail.Form = req.PendingForm
	case req.EditReviewID != nil:
		rv, err := uc.reviewService.GetOwned(ctx, req.Requester, p.ID, *req.EditReviewID)
		if err != nil {
			return nil, err
		}
		detail.Form = appreview.FormOf(rv)
	}

	return detail, nil
}

// inCart 购物车查询失败不影响详情页
func (uc *ProductDetailUseCase) inCart(ctx context.Context, cartID string, productID uint) bool {
	if cartID == "" {
		return false
	}
	ok, err := uc.cart.HasItem(ctx, cartID, productID)
	if err != nil {
		uc.logger.Warn("cart lookup failed",
			zap.String("cart_id", cartID),
			zap.Uint("product_id", productID),
			zap.Error(err),
		)
		return false
	}
	return ok
}

func (uc *ProductDetailUseCase) reviewItems(ctx context.Context, reviews []*review.Review) []*appreview.Item {
	names := make(map[uint]string)
	items := make([]*appreview.Item, len(reviews))
	for i, rv := range reviews {
		name, ok := names[rv.UserID]
		if !ok {
			if u, err := uc.userRepo.FindByID(ctx, rv.UserID); err == nil {
				name = u.DisplayName()
			}
			names[rv.UserID] = name
		}
		items[i] = appreview.NewItem(rv, name)
	}
	return items
}

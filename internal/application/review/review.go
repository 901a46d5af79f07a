package review

import (
	"context"

	"github.com/xiebiao/marketplace/internal/domain/product"
	"github.com/xiebiao/marketplace/internal/domain/review"
	"github.com/xiebiao/marketplace/internal/domain/user"
)

const timeLayout = "2006-01-02 15:04:05"

// ReviewUseCase 商品详情页上的评价增删改
// 评价操作都挂在商品详情地址下，先按分类+Slug定位商品（含审核可见性检查）
type ReviewUseCase struct {
	productService product.Service
	reviewService  review.Service
}

// NewReviewUseCase 创建评价用例
func NewReviewUseCase(productService product.Service, reviewService review.Service) *ReviewUseCase {
	return &ReviewUseCase{
		productService: productService,
		reviewService:  reviewService,
	}
}

// Target 评价所属的商品地址
type Target struct {
	CategorySlug string
	ProductSlug  string
}

// Form 评价表单，校验失败时原样回显
type Form struct {
	Rating   *int   `json:"rating"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
}

func (f Form) input() review.Input {
	return review.Input{Rating: f.Rating, Text: f.Text, ImageURL: f.ImageURL}
}

// FormOf 用已有评价预填表单
func FormOf(r *review.Review) *Form {
	rating := r.Rating
	return &Form{Rating: &rating, Text: r.Text, ImageURL: r.ImageURL}
}

// Item 评价DTO
type Item struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	UserID    uint   `json:"user_id"`
	Author    string `json:"author,omitempty"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewItem 领域实体 → DTO，author为评价人展示名
func NewItem(r *review.Review, author string) *Item {
	return &Item{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Author:    author,
		Rating:    r.Rating,
		Text:      r.Text,
		ImageURL:  r.ImageURL,
		CreatedAt: r.CreatedAt.Format(timeLayout),
		UpdatedAt: r.UpdatedAt.Format(timeLayout),
	}
}

// Result 变更结果，Redirect指向商品详情
type Result struct {
	Redirect string
	Review   *Item
}

// Add 发表评价
func (uc *ReviewUseCase) Add(ctx context.Context, r user.Requester, t Target, f Form) (*Result, error) {
	p, err := uc.productService.GetVisible(ctx, r, t.CategorySlug, t.ProductSlug)
	if err != nil {
		return nil, err
	}

	rv, err := uc.reviewService.Add(ctx, r, p.ID, f.input())
	if err != nil {
		return nil, err
	}
	return &Result{Redirect: p.URL(), Review: NewItem(rv, "")}, nil
}

// Edit 修改自己的评价
func (uc *ReviewUseCase) Edit(ctx context.Context, r user.Requester, t Target, reviewID uint, f Form) (*Result, error) {
	p, err := uc.productService.GetVisible(ctx, r, t.CategorySlug, t.ProductSlug)
	if err != nil {
		return nil, err
	}

	rv, err := uc.reviewService.Edit(ctx, r, p.ID, reviewID, f.input())
	if err != nil {
		return nil, err
	}
	return &Result{Redirect: p.URL(), Review: NewItem(rv, "")}, nil
}

// Delete 删除自己的评价
func (uc *ReviewUseCase) Delete(ctx context.Context, r user.Requester, t Target, reviewID uint) (*Result, error) {
	p, err := uc.productService.GetVisible(ctx, r, t.CategorySlug, t.ProductSlug)
	if err != nil {
		return nil, err
	}

	if err := uc.reviewService.Delete(ctx, r, p.ID, reviewID); err != nil {
		return nil, err
	}
	return &Result{Redirect: p.URL()}, nil
}

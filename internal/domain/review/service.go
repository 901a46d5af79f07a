package review

import (
	"context"
	"time"

	"github.com/xiebiao/marketplace/internal/domain/user"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
	"github.com/xiebiao/marketplace/pkg/metrics"
)

// Service 评价领域服务
//
// 每个(用户, 商品)的评价状态：
//
//	不存在 --Add--> 存在 --Edit--> 存在
//	存在 --Delete--> 不存在
//
// Add只能从"不存在"状态发起
type Service interface {
	Add(ctx context.Context, r user.Requester, productID uint, in Input) (*Review, error)

	// Edit 原地修改评价，未上传新图片时保留原图片
	Edit(ctx context.Context, r user.Requester, productID, reviewID uint, in Input) (*Review, error)

	Delete(ctx context.Context, r user.Requester, productID, reviewID uint) error

	// GetOwned 加载r自己在该商品下的评价
	// 评价不存在或不属于该商品返回ErrReviewNotFound，属于他人返回ErrPermissionDenied
	GetOwned(ctx context.Context, r user.Requester, productID, reviewID uint) (*Review, error)

	ListByProduct(ctx context.Context, productID uint) ([]*Review, error)

	// HasReviewed 匿名用户总是返回false
	HasReviewed(ctx context.Context, r user.Requester, productID uint) (bool, error)
}

type service struct {
	repo Repository
}

// NewService 创建评价领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, r user.Requester, productID uint, in Input) (*Review, error) {
	if !r.IsAuthenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	exists, err := s.repo.ExistsByUserAndProduct(ctx, r.UserID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	v, err := Validate(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rv := &Review{
		ProductID: productID,
		UserID:    r.UserID,
		Text:      v.Text,
		ImageURL:  v.ImageURL,
		Rating:    v.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// 并发提交时由唯一索引拦截，仓储同样返回ErrDuplicateReview
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.ReviewsTotal, map[string]string{"action": "add"})
	return rv, nil
}

func (s *service) Edit(ctx context.Context, r user.Requester, productID, reviewID uint, in Input) (*Review, error) {
	rv, err := s.GetOwned(ctx, r, productID, reviewID)
	if err != nil {
		return nil, err
	}

	v, err := Validate(in)
	if err != nil {
		return nil, err
	}

	rv.Rating = v.Rating
	rv.Text = v.Text
	if v.ImageURL != "" {
		rv.ImageURL = v.ImageURL
	}
	rv.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, rv); err != nil {
		return nil, err
	}

	metrics.IncCounterVec(metrics.ReviewsTotal, map[string]string{"action": "edit"})
	return rv, nil
}

func (s *service) Delete(ctx context.Context, r user.Requester, productID, reviewID uint) error {
	rv, err := s.GetOwned(ctx, r, productID, reviewID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, rv.ID); err != nil {
		return err
	}

	metrics.IncCounterVec(metrics.ReviewsTotal, map[string]string{"action": "delete"})
	return nil
}

func (s *service) GetOwned(ctx context.Context, r user.Requester, productID, reviewID uint) (*Review, error) {
	if !r.IsAuthenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	rv, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rv.ProductID != productID {
		return nil, ErrReviewNotFound
	}
	if !rv.IsWrittenBy(r.UserID) {
		return nil, ErrPermissionDenied
	}
	return rv, nil
}

func (s *service) ListByProduct(ctx context.Context, productID uint) ([]*Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}

func (s *service) HasReviewed(ctx context.Context, r user.Requester, productID uint) (bool, error) {
	if !r.IsAuthenticated() {
		return false, nil
	}
	return s.repo.ExistsByUserAndProduct(ctx, r.UserID, productID)
}

package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/marketplace/internal/domain/review"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

// reviewRepository 评价仓储实现
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建评价
// 并发提交时由(user_id, product_id)唯一索引兜底
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := toReviewModel(rv)
	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return review.ErrDuplicateReview
		}
		return apperrors.Wrap(err, "创建评价失败")
	}

	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt
	rv.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, rv *review.Review) error {
	model := toReviewModel(rv)
	if err := dbFromContext(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新评价失败")
	}
	rv.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := dbFromContext(ctx, r.db).Delete(&ReviewModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除评价失败")
	}
	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	var model ReviewModel
	if err := dbFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "查询评价失败")
	}
	return toReview(&model), nil
}

func (r *reviewRepository) ExistsByUserAndProduct(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&ReviewModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询评价失败")
	}
	return count > 0, nil
}

// ListByProduct 按ID升序返回商品的全部评价
func (r *reviewRepository) ListByProduct(ctx context.Context, productID uint) ([]*review.Review, error) {
	var models []ReviewModel
	err := dbFromContext(ctx, r.db).Where("product_id = ?", productID).Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评价列表失败")
	}

	reviews := make([]*review.Review, len(models))
	for i := range models {
		reviews[i] = toReview(&models[i])
	}
	return reviews, nil
}

func (r *reviewRepository) DeleteByProduct(ctx context.Context, productID uint) error {
	err := dbFromContext(ctx, r.db).Where("product_id = ?", productID).Delete(&ReviewModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "删除商品评价失败")
	}
	return nil
}

func toReviewModel(rv *review.Review) *ReviewModel {
	return &ReviewModel{
		ID:        rv.ID,
		ProductID: rv.ProductID,
		UserID:    rv.UserID,
		Text:      rv.Text,
		ImageURL:  rv.ImageURL,
		Rating:    rv.Rating,
		CreatedAt: rv.CreatedAt,
		UpdatedAt: rv.UpdatedAt,
	}
}

func toReview(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:        model.ID,
		ProductID: model.ProductID,
		UserID:    model.UserID,
		Text:      model.Text,
		ImageURL:  model.ImageURL,
		Rating:    model.Rating,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

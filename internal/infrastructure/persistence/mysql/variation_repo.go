package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/marketplace/internal/domain/product"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

type variationRepository struct {
	db *gorm.DB
}

// NewVariationRepository 创建商品规格仓储
func NewVariationRepository(db *gorm.DB) product.VariationRepository {
	return &variationRepository{db: db}
}

func (r *variationRepository) Create(ctx context.Context, v *product.Variation) error {
	model := toVariationModel(v)
	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建商品规格失败")
	}
	v.ID = model.ID
	v.CreatedAt = model.CreatedAt
	return nil
}

func (r *variationRepository) FindByID(ctx context.Context, id uint) (*product.Variation, error) {
	var model VariationModel
	if err := dbFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrVariationNotFound
		}
		return nil, apperrors.Wrap(err, "查询商品规格失败")
	}
	return toVariation(&model), nil
}

func (r *variationRepository) Update(ctx context.Context, v *product.Variation) error {
	if err := dbFromContext(ctx, r.db).Save(toVariationModel(v)).Error; err != nil {
		return apperrors.Wrap(err, "更新商品规格失败")
	}
	return nil
}

// ListActive 按ID升序返回启用的规格
func (r *variationRepository) ListActive(ctx context.Context, productID uint, c product.VariationCategory) ([]*product.Variation, error) {
	var models []VariationModel
	err := dbFromContext(ctx, r.db).
		Where("product_id = ? AND category = ? AND is_active = ?", productID, string(c), true).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询商品规格失败")
	}

	variations := make([]*product.Variation, len(models))
	for i := range models {
		variations[i] = toVariation(&models[i])
	}
	return variations, nil
}

func (r *variationRepository) DeleteByProduct(ctx context.Context, productID uint) error {
	err := dbFromContext(ctx, r.db).Where("product_id = ?", productID).Delete(&VariationModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "删除商品规格失败")
	}
	return nil
}

func toVariationModel(v *product.Variation) *VariationModel {
	return &VariationModel{
		ID:        v.ID,
		ProductID: v.ProductID,
		Category:  string(v.Category),
		Value:     v.Value,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
	}
}

func toVariation(model *VariationModel) *product.Variation {
	return &product.Variation{
		ID:        model.ID,
		ProductID: model.ProductID,
		Category:  product.VariationCategory(model.Category),
		Value:     model.Value,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
	}
}

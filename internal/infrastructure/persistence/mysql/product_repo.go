package mysql

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/marketplace/internal/domain/product"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

// productRepository 商品仓储实现
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepository{db: db}
}

// Create 创建商品
// 名称或Slug冲突转换为ErrProductDuplicate
func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	model := toProductModel(p)
	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return product.ErrProductDuplicate
		}
		return apperrors.Wrap(err, "创建商品失败")
	}

	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	return nil
}

// Update 保存全部字段（包括零值，如下架、清空折扣价）
func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	model := toProductModel(p)
	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return product.ErrProductDuplicate
		}
		return apperrors.Wrap(err, "更新商品失败")
	}

	p.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 物理删除商品
// 规格和评价需要调用方在同一事务中先删除
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	result := dbFromContext(ctx, r.db).Delete(&ProductModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除商品失败")
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

// FindByID 根据ID查找商品（预加载分类用于拼接URL）
func (r *productRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	var model ProductModel
	err := dbFromContext(ctx, r.db).Preload("Category").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "查询商品失败")
	}
	return toProduct(&model), nil
}

// FindBySlug 在指定分类下按Slug查找
func (r *productRepository) FindBySlug(ctx context.Context, categoryID uint, slug string) (*product.Product, error) {
	var model ProductModel
	err := dbFromContext(ctx, r.db).
		Preload("Category").
		Where("category_id = ? AND slug = ?", categoryID, slug).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "查询商品失败")
	}
	return toProduct(&model), nil
}

// Count 统计符合条件的商品数量
func (r *productRepository) Count(ctx context.Context, filter product.ListFilter) (int64, error) {
	var total int64
	query := applyProductFilter(dbFromContext(ctx, r.db).Model(&ProductModel{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return 0, apperrors.Wrap(err, "统计商品数量失败")
	}
	return total, nil
}

// Find 查询商品列表，limit<=0时不分页
func (r *productRepository) Find(ctx context.Context, filter product.ListFilter, offset, limit int) ([]*product.Product, error) {
	query := applyProductFilter(dbFromContext(ctx, r.db).Model(&ProductModel{}), filter).
		Preload("Category")

	switch filter.OrderBy {
	case product.OrderIDDesc:
		query = query.Order("id DESC")
	case product.OrderCreatedDesc:
		query = query.Order("created_at DESC").Order("id DESC")
	default:
		query = query.Order("id ASC")
	}

	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}

	var models []ProductModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询商品列表失败")
	}

	products := make([]*product.Product, len(models))
	for i := range models {
		products[i] = toProduct(&models[i])
	}
	return products, nil
}

func applyProductFilter(query *gorm.DB, filter product.ListFilter) *gorm.DB {
	if filter.OnlyListed {
		query = query.Where("status = ? AND is_approved = ?", true, true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Keyword != "" {
		pattern := containsPattern(filter.Keyword)
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!'", pattern, pattern)
	}
	return query
}

func toProductModel(p *product.Product) *ProductModel {
	model := &ProductModel{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Status:      p.Status,
		IsApproved:  p.IsApproved,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.DiscountPrice != nil {
		model.DiscountPrice = decimal.NewNullDecimal(*p.DiscountPrice)
	}
	return model
}

func toProduct(model *ProductModel) *product.Product {
	p := &product.Product{
		ID:           model.ID,
		OwnerID:      model.OwnerID,
		Name:         model.Name,
		Slug:         model.Slug,
		Description:  model.Description,
		Price:        model.Price,
		ImageURL:     model.ImageURL,
		Stock:        model.Stock,
		Status:       model.Status,
		IsApproved:   model.IsApproved,
		CategoryID:   model.CategoryID,
		CategorySlug: model.Category.Slug,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	if model.DiscountPrice.Valid {
		d := model.DiscountPrice.Decimal
		p.DiscountPrice = &d
	}
	return p
}

package product

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/xiebiao/marketplace/internal/domain/category"
	"github.com/xiebiao/marketplace/internal/domain/user"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
	"github.com/xiebiao/marketplace/pkg/metrics"
	"github.com/xiebiao/marketplace/pkg/pagination"
)

// Service 商品领域服务
// 负责商品的生命周期规则：校验、归属、审核可见性、上下架和列表查询
type Service interface {
	// CreateProduct 创建商品
	// ownerID为nil表示后台或历史数据；新商品一律为未审核状态
	CreateProduct(ctx context.Context, ownerID *uint, in Input) (*Product, error)

	// UpdateProduct 编辑商品，只有所有者或运营可以编辑，审核状态不变
	UpdateProduct(ctx context.Context, r user.Requester, id uint, in Input) (*Product, error)

	// Authorize 加载商品并校验r是否有管理权限
	Authorize(ctx context.Context, r user.Requester, id uint) (*Product, error)

	// SetStatus 上下架（所有者或运营）
	SetStatus(ctx context.Context, r user.Requester, id uint, active bool) (*Product, error)

	// SetApproval 审核开关（仅运营）
	SetApproval(ctx context.Context, r user.Requester, id uint, approved bool) (*Product, error)

	// GetVisible 详情页查询
	// 分类+Slug找不到，或商品未审核且r既不是所有者也不是运营时，返回ErrProductNotFound
	GetVisible(ctx context.Context, r user.Requester, categorySlug, productSlug string) (*Product, error)

	// List 公开列表（只含已上架且已审核的商品），rawPage是未解析的页码参数
	List(ctx context.Context, filter ListFilter, rawPage string, perPage int) ([]*Product, *pagination.Page, error)

	// Search 关键词搜索，按创建时间倒序，不分页
	Search(ctx context.Context, keyword string) ([]*Product, error)

	// AddVariation 为商品添加规格（所有者或运营）
	AddVariation(ctx context.Context, r user.Requester, productID uint, c VariationCategory, value string) (*Variation, error)

	// SetVariationActive 启用/停用规格（仅运营）
	SetVariationActive(ctx context.Context, r user.Requester, variationID uint, active bool) (*Variation, error)

	// Variations 商品启用中的颜色和尺码
	Variations(ctx context.Context, productID uint) (colors, sizes []*Variation, err error)
}

type service struct {
	repo          Repository
	variationRepo VariationRepository
	categoryRepo  category.Repository
}

// NewService 创建商品领域服务
func NewService(repo Repository, variationRepo VariationRepository, categoryRepo category.Repository) Service {
	return &service{
		repo:          repo,
		variationRepo: variationRepo,
		categoryRepo:  categoryRepo,
	}
}

func (s *service) CreateProduct(ctx context.Context, ownerID *uint, in Input) (*Product, error) {
	v, err := Validate(in, nil)
	if err != nil {
		return nil, err
	}

	cat, err := s.loadCategory(ctx, v.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &Product{
		OwnerID:    ownerID,
		CategoryID: cat.ID,
		// 审核由运营完成，任何创建路径都不会自动通过
		IsApproved: false,
		CreatedAt:  now,
	}
	v.applyTo(p, cat, now)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.ProductsCreatedTotal)
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, r user.Requester, id uint, in Input) (*Product, error) {
	p, err := s.Authorize(ctx, r, id)
	if err != nil {
		return nil, err
	}

	v, err := Validate(in, p)
	if err != nil {
		return nil, err
	}

	cat, err := s.loadCategory(ctx, v.CategoryID)
	if err != nil {
		return nil, err
	}

	v.applyTo(p, cat, time.Now())
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Authorize(ctx context.Context, r user.Requester, id uint) (*Product, error) {
	if !r.IsAuthenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanBeManagedBy(r) {
		return nil, ErrPermissionDenied
	}
	return p, nil
}

func (s *service) SetStatus(ctx context.Context, r user.Requester, id uint, active bool) (*Product, error) {
	p, err := s.Authorize(ctx, r, id)
	if err != nil {
		return nil, err
	}

	p.Status = active
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	action := "deactivate"
	if active {
		action = "activate"
	}
	metrics.IncCounterVec(metrics.ProductModerationsTotal, map[string]string{"action": action})
	return p, nil
}

func (s *service) SetApproval(ctx context.Context, r user.Requester, id uint, approved bool) (*Product, error) {
	if !r.IsStaff {
		return nil, ErrPermissionDenied
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.IsApproved = approved
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	action := "unapprove"
	if approved {
		action = "approve"
	}
	metrics.IncCounterVec(metrics.ProductModerationsTotal, map[string]string{"action": action})
	return p, nil
}

func (s *service) GetVisible(ctx context.Context, r user.Requester, categorySlug, productSlug string) (*Product, error) {
	cat, err := s.categoryRepo.FindBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	p, err := s.repo.FindBySlug(ctx, cat.ID, productSlug)
	if err != nil {
		return nil, err
	}
	if !p.VisibleTo(r) {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) List(ctx context.Context, filter ListFilter, rawPage string, perPage int) ([]*Product, *pagination.Page, error) {
	filter.OnlyListed = true
	filter.Keyword = strings.TrimSpace(filter.Keyword)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	page := pagination.New(total, perPage).Page(rawPage)
	if total == 0 {
		return []*Product{}, page, nil
	}

	products, err := s.repo.Find(ctx, filter, page.Offset(), page.Limit())
	if err != nil {
		return nil, nil, err
	}
	return products, page, nil
}

func (s *service) Search(ctx context.Context, keyword string) ([]*Product, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []*Product{}, nil
	}

	return s.repo.Find(ctx, ListFilter{
		Keyword:    keyword,
		OnlyListed: true,
		OrderBy:    OrderCreatedDesc,
	}, 0, 0)
}

func (s *service) AddVariation(ctx context.Context, r user.Requester, productID uint, c VariationCategory, value string) (*Variation, error) {
	if _, err := s.Authorize(ctx, r, productID); err != nil {
		return nil, err
	}

	v, err := NewVariation(productID, c, value)
	if err != nil {
		return nil, err
	}
	if err := s.variationRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) SetVariationActive(ctx context.Context, r user.Requester, variationID uint, active bool) (*Variation, error) {
	if !r.IsStaff {
		return nil, ErrPermissionDenied
	}

	v, err := s.variationRepo.FindByID(ctx, variationID)
	if err != nil {
		return nil, err
	}

	v.IsActive = active
	if err := s.variationRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) Variations(ctx context.Context, productID uint) ([]*Variation, []*Variation, error) {
	colors, err := s.variationRepo.ListActive(ctx, productID, VariationColor)
	if err != nil {
		return nil, nil, err
	}
	sizes, err := s.variationRepo.ListActive(ctx, productID, VariationSize)
	if err != nil {
		return nil, nil, err
	}
	return colors, sizes, nil
}

// loadCategory 分类不存在时作为字段错误返回
func (s *service) loadCategory(ctx context.Context, id uint) (*category.Category, error) {
	cat, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return nil, apperrors.NewValidation([]apperrors.FieldError{
				{Field: "category_id", Message: "所选分类不存在"},
			})
		}
		return nil, err
	}
	return cat, nil
}

func (v *Validated) applyTo(p *Product, cat *category.Category, now time.Time) {
	p.Name = v.Name
	p.Slug = v.Slug
	p.Description = v.Description
	p.Price = v.Price
	p.DiscountPrice = v.DiscountPrice
	p.ImageURL = v.ImageURL
	p.Stock = v.Stock
	p.Status = v.Status
	p.CategoryID = cat.ID
	p.CategorySlug = cat.Slug
	p.UpdatedAt = now
}

package catalog

import (
	"context"

	"github.com/xiebiao/marketplace/internal/domain/category"
	"github.com/xiebiao/marketplace/internal/domain/user"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

// CategoryUseCase 分类查询与维护
type CategoryUseCase struct {
	categoryRepo category.Repository
}

// NewCategoryUseCase 创建分类用例
func NewCategoryUseCase(categoryRepo category.Repository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// List 全部分类
func (uc *CategoryUseCase) List(ctx context.Context) ([]*CategoryInfo, error) {
	cats, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*CategoryInfo, len(cats))
	for i, c := range cats {
		out[i] = newCategoryInfo(c)
	}
	return out, nil
}

// Create 新建分类，仅运营人员可用
func (uc *CategoryUseCase) Create(ctx context.Context, r user.Requester, name, description string) (*CategoryInfo, error) {
	if !r.IsStaff {
		return nil, apperrors.ErrForbidden
	}

	c, err := category.NewCategory(name, description)
	if err != nil {
		return nil, err
	}
	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return newCategoryInfo(c), nil
}

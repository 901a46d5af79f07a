package product

import (
	"context"
	"fmt"

	"github.com/xiebiao/marketplace/internal/domain/product"
	"github.com/xiebiao/marketplace/internal/domain/user"
)

// VariationInfo 规格DTO
type VariationInfo struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	Category  string `json:"category"`
	Value     string `json:"value"`
	IsActive  bool   `json:"is_active"`
}

func newVariationInfo(v *product.Variation) *VariationInfo {
	return &VariationInfo{
		ID:        v.ID,
		ProductID: v.ProductID,
		Category:  string(v.Category),
		Value:     v.Value,
		IsActive:  v.IsActive,
	}
}

func newVariationInfos(vs []*product.Variation) []*VariationInfo {
	out := make([]*VariationInfo, len(vs))
	for i, v := range vs {
		out[i] = newVariationInfo(v)
	}
	return out
}

// VariationUseCase 商品规格维护
type VariationUseCase struct {
	productService product.Service
}

// NewVariationUseCase 创建规格用例
func NewVariationUseCase(productService product.Service) *VariationUseCase {
	return &VariationUseCase{productService: productService}
}

// Add 所有者或运营添加规格
func (uc *VariationUseCase) Add(ctx context.Context, r user.Requester, productID uint, category, value string) (*VariationInfo, error) {
	v, err := uc.productService.AddVariation(ctx, r, productID, product.VariationCategory(category), value)
	if err != nil {
		return nil, err
	}
	return newVariationInfo(v), nil
}

// SetActive 运营启用/停用规格
func (uc *VariationUseCase) SetActive(ctx context.Context, r user.Requester, variationID uint, active bool) (*VariationInfo, error) {
	v, err := uc.productService.SetVariationActive(ctx, r, variationID, active)
	if err != nil {
		return nil, err
	}
	return newVariationInfo(v), nil
}

func sellerURL(userID uint) string {
	return fmt.Sprintf("/api/v1/sellers/%d", userID)
}

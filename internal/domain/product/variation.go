package product

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

// VariationCategory 规格类型（封闭枚举）
type VariationCategory string

const (
	VariationColor VariationCategory = "color"
	VariationSize  VariationCategory = "size"
)

// Valid 是否为已知的规格类型
func (c VariationCategory) Valid() bool {
	return c == VariationColor || c == VariationSize
}

// Variation 商品规格（颜色、尺码）
type Variation struct {
	ID        uint
	ProductID uint
	Category  VariationCategory
	Value     string
	IsActive  bool
	CreatedAt time.Time
}

// NewVariation 创建规格，默认启用
func NewVariation(productID uint, category VariationCategory, value string) (*Variation, error) {
	value = strings.TrimSpace(value)

	var errs apperrors.FieldErrors
	if !category.Valid() {
		errs.Add("category", "规格类型只能是color或size")
	}
	if value == "" {
		errs.Add("value", "规格值不能为空")
	} else if utf8.RuneCountInString(value) > 100 {
		errs.Add("value", "规格值不能超过100个字符")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &Variation{
		ProductID: productID,
		Category:  category,
		Value:     value,
		IsActive:  true,
		CreatedAt: time.Now(),
	}, nil
}

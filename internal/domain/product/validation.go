package product

import (
	"strings"
	"unicode/utf8"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 1000
	priceScale           = 2
)

// Input 商品表单（创建与编辑共用）
// 所有者、审核状态、Slug不在表单中，由服务端决定
type Input struct {
	Name          string
	Description   string
	Price         *int64
	DiscountPrice *decimal.Decimal
	ImageURL      string
	Stock         *int
	CategoryID    uint
	Status        *bool // 为nil时创建默认上架，编辑保持不变
}

// Validated 校验通过的商品字段
type Validated struct {
	Name          string
	Slug          string
	Description   string
	Price         int64
	DiscountPrice *decimal.Decimal
	ImageURL      string
	Stock         int
	CategoryID    uint
	Status        bool
}

// Validate 校验商品表单
// prior为nil表示创建；编辑时传入当前商品，未上传新图片则沿用原图片
// 所有字段都校验完后一次性返回字段错误
func Validate(in Input, prior *Product) (*Validated, error) {
	var errs apperrors.FieldErrors
	out := &Validated{
		Name:          strings.TrimSpace(in.Name),
		Description:   strings.TrimSpace(in.Description),
		DiscountPrice: in.DiscountPrice,
		ImageURL:      strings.TrimSpace(in.ImageURL),
		CategoryID:    in.CategoryID,
		Status:        true,
	}

	switch {
	case out.Name == "":
		errs.Add("name", "商品名称不能为空")
	case utf8.RuneCountInString(out.Name) > maxNameLength:
		errs.Add("name", "商品名称不能超过200个字符")
	default:
		out.Slug = slug.Make(out.Name)
		if out.Slug == "" {
			errs.Add("name", "商品名称必须包含字母或数字")
		}
	}

	if utf8.RuneCountInString(out.Description) > maxDescriptionLength {
		errs.Add("description", "商品描述不能超过1000个字符")
	}

	switch {
	case in.Price == nil:
		errs.Add("price", "请填写价格")
	case *in.Price < 0:
		errs.Add("price", "价格不能为负数")
	default:
		out.Price = *in.Price
	}

	if in.DiscountPrice != nil {
		switch {
		case in.DiscountPrice.IsNegative():
			errs.Add("discount_price", "折扣价不能为负数")
		case !in.DiscountPrice.Equal(in.DiscountPrice.Round(priceScale)):
			// 存储精度为两位小数，多余的位数会在入库时被舍入
			errs.Add("discount_price", "折扣价最多保留两位小数")
		case in.Price != nil && in.DiscountPrice.GreaterThanOrEqual(decimal.NewFromInt(*in.Price)):
			errs.Add("discount_price", "折扣价必须低于原价")
		}
	}

	if out.ImageURL == "" {
		if prior != nil {
			out.ImageURL = prior.ImageURL
		} else {
			errs.Add("image", "请上传商品图片")
		}
	}

	switch {
	case in.Stock == nil:
		errs.Add("stock", "请填写库存")
	case *in.Stock < 0:
		errs.Add("stock", "库存不能为负数")
	default:
		out.Stock = *in.Stock
	}

	if in.CategoryID == 0 {
		errs.Add("category_id", "请选择商品分类")
	}

	if in.Status != nil {
		out.Status = *in.Status
	} else if prior != nil {
		out.Status = prior.Status
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

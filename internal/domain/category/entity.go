package category

import (
	"strings"
	"unicode/utf8"

	"github.com/gosimple/slug"

	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

// Category 商品分类
// 分类由运营维护，商品通过CategoryID引用
type Category struct {
	ID          uint
	Name        string
	Slug        string
	Description string
}

// NewCategory 创建分类，Slug由名称生成
func NewCategory(name, description string) (*Category, error) {
	name = strings.TrimSpace(name)

	var errs apperrors.FieldErrors
	if name == "" {
		errs.Add("name", "分类名称不能为空")
	} else if utf8.RuneCountInString(name) > 50 {
		errs.Add("name", "分类名称不能超过50个字符")
	}
	if utf8.RuneCountInString(description) > 255 {
		errs.Add("description", "分类描述不能超过255个字符")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &Category{
		Name:        name,
		Slug:        slug.Make(name),
		Description: description,
	}, nil
}

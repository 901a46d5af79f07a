package category

import (
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrCategoryDuplicate 分类名称或Slug重复
	ErrCategoryDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "分类已存在")
)

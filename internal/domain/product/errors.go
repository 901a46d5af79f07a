package product

import (
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

// 商品领域错误定义
var (
	// ErrProductNotFound 商品不存在（或未审核且无权查看）
	ErrProductNotFound = apperrors.New(apperrors.ErrCodeProductNotFound, "商品不存在")

	// ErrProductDuplicate 商品名称或Slug已存在
	ErrProductDuplicate = apperrors.New(apperrors.ErrCodeProductDuplicate, "商品名称已存在")

	// ErrVariationNotFound 规格不存在
	ErrVariationNotFound = apperrors.New(apperrors.ErrCodeNotFound, "商品规格不存在")

	// ErrPermissionDenied 无权操作此商品
	ErrPermissionDenied = apperrors.New(apperrors.ErrCodeForbidden, "无权操作此商品")
)

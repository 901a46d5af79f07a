package review

import (
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

var (
	// ErrReviewNotFound 评价不存在（或不属于当前商品）
	ErrReviewNotFound = apperrors.New(apperrors.ErrCodeReviewNotFound, "评价不存在")

	// ErrDuplicateReview 已评价过该商品
	ErrDuplicateReview = apperrors.New(apperrors.ErrCodeDuplicateReview, "您已评价过该商品")

	// ErrPermissionDenied 只能修改或删除自己的评价
	ErrPermissionDenied = apperrors.New(apperrors.ErrCodeForbidden, "只能修改或删除自己的评价")
)

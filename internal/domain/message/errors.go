package message

import (
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

var (
	// ErrMessageNotFound 消息不存在或无权查看
	ErrMessageNotFound = apperrors.New(apperrors.ErrCodeMessageNotFound, "消息不存在")

	// ErrSelfMessage 不能给自己发送消息
	ErrSelfMessage = apperrors.New(apperrors.ErrCodeSelfMessage, "不能给自己发送消息")
)

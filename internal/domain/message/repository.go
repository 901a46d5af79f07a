package message

import (
	"context"
)

// Repository 站内消息仓储
// 联系卖家流程和消息详情共用这一个接口
type Repository interface {
	Create(ctx context.Context, m *ContactMessage) error

	// FindByID 不存在时返回ErrMessageNotFound
	FindByID(ctx context.Context, id uint) (*ContactMessage, error)
}

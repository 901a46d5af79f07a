package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/marketplace/internal/domain/message"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建站内消息仓储
func NewMessageRepository(db *gorm.DB) message.Repository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *message.ContactMessage) error {
	model := &MessageModel{
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		ProductID:  m.ProductID,
		Subject:    m.Subject,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt,
	}
	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "保存消息失败")
	}
	m.ID = model.ID
	m.CreatedAt = model.CreatedAt
	return nil
}

func (r *messageRepository) FindByID(ctx context.Context, id uint) (*message.ContactMessage, error) {
	var model MessageModel
	if err := dbFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, message.ErrMessageNotFound
		}
		return nil, apperrors.Wrap(err, "查询消息失败")
	}
	return &message.ContactMessage{
		ID:         model.ID,
		SenderID:   model.SenderID,
		ReceiverID: model.ReceiverID,
		ProductID:  model.ProductID,
		Subject:    model.Subject,
		Body:       model.Body,
		CreatedAt:  model.CreatedAt,
	}, nil
}

package contact

import (
	"context"
	"fmt"

	"github.com/xiebiao/marketplace/internal/domain/message"
	"github.com/xiebiao/marketplace/internal/domain/user"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

// MessageInfo 站内消息DTO
type MessageInfo struct {
	ID         uint   `json:"id"`
	SenderID   uint   `json:"sender_id"`
	ReceiverID uint   `json:"receiver_id"`
	ProductID  *uint  `json:"product_id"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	CreatedAt  string `json:"created_at"`
}

func newMessageInfo(m *message.ContactMessage) *MessageInfo {
	return &MessageInfo{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		ProductID:  m.ProductID,
		Subject:    m.Subject,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func messageURL(id uint) string {
	return fmt.Sprintf("/api/v1/messages/%d", id)
}

// GetMessageUseCase 查看站内消息
type GetMessageUseCase struct {
	messageRepo message.Repository
}

// NewGetMessageUseCase 创建查看消息用例
func NewGetMessageUseCase(messageRepo message.Repository) *GetMessageUseCase {
	return &GetMessageUseCase{messageRepo: messageRepo}
}

// Execute 只有发送方和接收方可以查看，其他人看到的是消息不存在
func (uc *GetMessageUseCase) Execute(ctx context.Context, r user.Requester, id uint) (*MessageInfo, error) {
	if !r.IsAuthenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	m, err := uc.messageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.CanBeReadBy(r.UserID) {
		return nil, message.ErrMessageNotFound
	}
	return newMessageInfo(m), nil
}

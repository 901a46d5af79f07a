package message

import (
	"time"
)

// ContactMessage 买家发给卖家的站内消息
type ContactMessage struct {
	ID         uint
	SenderID   uint
	ReceiverID uint
	ProductID  *uint // 从商品页发起时关联商品
	Subject    string
	Body       string
	CreatedAt  time.Time
}

// CanBeReadBy 发送方和接收方可以查看
func (m *ContactMessage) CanBeReadBy(userID uint) bool {
	return userID != 0 && (m.SenderID == userID || m.ReceiverID == userID)
}

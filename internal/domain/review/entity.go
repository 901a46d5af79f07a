package review

import (
	"time"
)

// Review 商品评价
// 同一用户对同一商品最多一条评价（创建前检查，数据库唯一索引兜底）
type Review struct {
	ID        uint
	ProductID uint
	UserID    uint
	Text      string
	ImageURL  string
	Rating    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWrittenBy 是否为指定用户的评价
func (r *Review) IsWrittenBy(userID uint) bool {
	return userID != 0 && r.UserID == userID
}

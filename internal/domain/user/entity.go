package user

import (
	"strings"
	"time"
)

// User 用户实体（聚合根）
// 密码字段保存bcrypt哈希值，领域实体不带GORM tag，映射由仓储实现处理
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	FirstName string
	LastName  string
	IsStaff   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, firstName, lastName string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DisplayName 展示名：姓名为空时退回邮箱
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// Rename 修改姓名
func (u *User) Rename(firstName, lastName string) {
	u.FirstName = firstName
	u.LastName = lastName
	u.UpdatedAt = time.Now()
}

package user

import (
	"context"

	"github.com/xiebiao/marketplace/internal/domain/user"
)

// RegisterUseCase 用户注册用例
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// Execute 执行注册，返回应用层DTO而不是领域实体
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserInfo, error) {
	u, err := uc.userService.Register(ctx, user.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, err
	}

	return toUserInfo(u), nil
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UserInfo 用户信息（不含密码）
type UserInfo struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	IsStaff     bool   `json:"is_staff"`
}

func toUserInfo(u *user.User) *UserInfo {
	return &UserInfo{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DisplayName: u.DisplayName(),
		IsStaff:     u.IsStaff,
	}
}

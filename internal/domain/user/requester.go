package user

// Requester 发起请求的身份
// 匿名请求的UserID为0，由认证中间件从JWT中解析
type Requester struct {
	UserID  uint
	IsStaff bool
}

// Anonymous 匿名身份
var Anonymous = Requester{}

// IsAuthenticated 是否已登录
func (r Requester) IsAuthenticated() bool {
	return r.UserID != 0
}

// Is 是否为指定用户
func (r Requester) Is(userID uint) bool {
	return r.IsAuthenticated() && r.UserID == userID
}

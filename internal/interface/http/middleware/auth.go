package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/marketplace/internal/domain/user"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
	"github.com/xiebiao/marketplace/pkg/jwt"
	"github.com/xiebiao/marketplace/pkg/response"
)

const (
	ctxUserID      = "user_id"
	ctxEmail       = "email"
	ctxIsStaff     = "is_staff"
	ctxAccessToken = "access_token"
)

// TokenBlacklist 已登出Token查询（redis.SessionStore实现）
type TokenBlacklist interface {
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware JWT认证中间件
// 1. 从Header提取Token
// 2. 检查Token黑名单
// 3. 验证Token并把用户信息注入Context
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	blacklist  TokenBlacklist
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, blacklist TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		blacklist:  blacklist,
	}
}

// RequireAuth 要求登录
//
//	authorized := r.Group("/api/v1")
//	authorized.Use(authMiddleware.RequireAuth())
//	authorized.POST("/products", handler.Create)
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.authenticate(c); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth 可选登录
// Token有效则注入用户信息，无效或缺失都按匿名用户继续
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			_ = m.authenticate(c)
		}
		c.Next()
	}
}

// RequireStaff 要求运营人员，必须放在RequireAuth之后
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetRequester(c).IsStaff {
			response.Error(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) error {
	// Authorization: Bearer <token>
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return apperrors.ErrUnauthorized
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return apperrors.New(apperrors.ErrCodeInvalidToken, "Token格式错误")
	}
	tokenString := parts[1]

	blacklisted, err := m.blacklist.IsInBlacklist(c.Request.Context(), tokenString)
	if err != nil {
		return err
	}
	if blacklisted {
		return apperrors.New(apperrors.ErrCodeTokenExpired, "Token已失效，请重新登录")
	}

	claims, err := m.jwtManager.ParseToken(tokenString)
	if err != nil {
		return err
	}

	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxEmail, claims.Email)
	c.Set(ctxIsStaff, claims.IsStaff)
	c.Set(ctxAccessToken, tokenString)
	return nil
}

// GetRequester 当前请求者，未登录时返回user.Anonymous
func GetRequester(c *gin.Context) user.Requester {
	userID := GetUserID(c)
	if userID == 0 {
		return user.Anonymous
	}
	return user.Requester{UserID: userID, IsStaff: c.GetBool(ctxIsStaff)}
}

// GetUserID 从Context获取当前登录用户ID，未登录返回0
func GetUserID(c *gin.Context) uint {
	if userID, exists := c.Get(ctxUserID); exists {
		if uid, ok := userID.(uint); ok {
			return uid
		}
	}
	return 0
}

// GetEmail 从Context获取当前登录用户邮箱
func GetEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}

// GetAccessToken 当前请求携带的Token（登出时加入黑名单）
func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxAccessToken)
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/marketplace/pkg/errors"
	"github.com/xiebiao/marketplace/pkg/pagination"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. Data是业务数据；表单校验失败时也可能携带当前页面数据
// 4. Fields是字段级校验错误
type Response struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Data    interface{}            `json:"data,omitempty"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
}

// RedirectData 变更类接口的返回体
// 客户端拿到redirect后跳转，并把message作为提示展示
type RedirectData struct {
	Redirect string      `json:"redirect"`
	Result   interface{} `json:"result,omitempty"`
}

// Success 成功响应（Code=0表示成功）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 成功响应并附带提示
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Redirect 变更成功后告诉客户端跳转到哪里
func Redirect(c *gin.Context, location, message string, result interface{}) {
	SuccessWithMessage(c, message, &RedirectData{Redirect: location, Result: result})
}

// Error 错误响应（自动处理AppError）
//
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	ErrorWithData(c, err, nil)
}

// ErrorWithData 错误响应，同时返回页面数据
// 用于表单提交失败后需要回显当前页面的场景
func ErrorWithData(c *gin.Context, err error, data interface{}) {
	appErr := apperrors.GetAppError(err)

	// 内部错误只写日志，不返回给客户端
	if appErr.Err != nil {
		zap.L().Error("request failed",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("path", c.FullPath()),
			zap.Int("code", appErr.Code),
			zap.Error(appErr.Err),
		)
	}

	c.JSON(http.StatusOK, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
		Data:    data,
		Fields:  appErr.Fields,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// =========================================
// 分页响应结构
// =========================================

// PageData 分页数据封装
type PageData struct {
	List        interface{} `json:"list"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	PageSize    int         `json:"page_size"`
	TotalPages  int         `json:"total_pages"`
	HasNext     bool        `json:"has_next"`
	HasPrevious bool        `json:"has_previous"`
}

// NewPageData 创建分页数据
func NewPageData(list interface{}, page *pagination.Page) *PageData {
	return &PageData{
		List:        list,
		Total:       page.Total,
		Page:        page.Number,
		PageSize:    page.PerPage,
		TotalPages:  page.NumPages,
		HasNext:     page.HasNext(),
		HasPrevious: page.HasPrevious(),
	}
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, list interface{}, page *pagination.Page) {
	Success(c, NewPageData(list, page))
}

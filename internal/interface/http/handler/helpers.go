package handler

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/marketplace/pkg/errors"
	"github.com/xiebiao/marketplace/pkg/response"
)

const (
	headerCartID = "X-Cart-ID"
	cookieCartID = "cart_id"
)

// RegisterValidatorTagName 校验错误使用json字段名
func RegisterValidatorTagName() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindJSON 绑定失败时直接写响应并返回false
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.Error(c, bindError(err))
		return false
	}
	return true
}

func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		var fields apperrors.FieldErrors
		for _, fe := range verrs {
			fields.Add(fe.Field(), validationMessage(fe))
		}
		return fields.Err()
	}
	return apperrors.New(apperrors.ErrCodeBindError, "参数格式错误: "+err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "该字段不能为空"
	case "email":
		return "邮箱格式不正确"
	case "max":
		return "长度不能超过" + fe.Param() + "个字符"
	default:
		return "格式不正确"
	}
}

// uintParam 路径参数不是合法ID时按资源不存在处理
func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperrors.ErrNotFound)
		return 0, false
	}
	return uint(id), true
}

// optionalUintQuery 缺失或非法时返回nil
func optionalUintQuery(c *gin.Context, name string) *uint {
	id, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}

// cartID 购物车ID，优先取Header
func cartID(c *gin.Context) string {
	if id := c.GetHeader(headerCartID); id != "" {
		return id
	}
	id, _ := c.Cookie(cookieCartID)
	return id
}

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors(t *testing.T) {
	t.Run("无错误时返回nil", func(t *testing.T) {
		var errs FieldErrors
		assert.NoError(t, errs.Err())
	})

	t.Run("收集多个字段错误", func(t *testing.T) {
		var errs FieldErrors
		errs.Add("price", "价格不能为负数")
		errs.Add("stock", "库存不能为负数")

		err := errs.Err()
		require.Error(t, err)

		appErr := GetAppError(err)
		assert.Equal(t, ErrCodeInvalidParams, appErr.Code)
		require.Len(t, appErr.Fields, 2)
		assert.Equal(t, "price", appErr.Fields[0].Field)
		assert.Equal(t, "stock", appErr.Fields[1].Field)
		assert.Contains(t, err.Error(), "price: 价格不能为负数")
	})
}

func TestGetAppError(t *testing.T) {
	t.Run("包装后的AppError仍可提取", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", ErrUserNotFound)
		assert.Same(t, ErrUserNotFound, GetAppError(wrapped))
		assert.True(t, HasCode(wrapped, ErrCodeUserNotFound))
	})

	t.Run("普通错误转为内部错误", func(t *testing.T) {
		raw := errors.New("connection refused")
		appErr := GetAppError(raw)
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.ErrorIs(t, appErr, raw)
		assert.False(t, HasCode(raw, ErrCodeInternal))
	})
}

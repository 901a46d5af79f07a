package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(handler gin.HandlerFunc) map[string]interface{} {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	body["_status"] = float64(w.Code)
	return body
}

func TestError(t *testing.T) {
	t.Run("校验错误携带字段", func(t *testing.T) {
		var errs apperrors.FieldErrors
		errs.Add("rating", "请给出1到5之间的评分")

		body := perform(func(c *gin.Context) { Error(c, errs.Err()) })

		assert.Equal(t, float64(http.StatusOK), body["_status"])
		assert.Equal(t, float64(apperrors.ErrCodeInvalidParams), body["code"])
		fields, ok := body["fields"].([]interface{})
		require.True(t, ok)
		require.Len(t, fields, 1)
		assert.Equal(t, "rating", fields[0].(map[string]interface{})["field"])
	})

	t.Run("内部错误不泄露细节", func(t *testing.T) {
		body := perform(func(c *gin.Context) { Error(c, errors.New("dial tcp: refused")) })

		assert.Equal(t, float64(apperrors.ErrCodeInternal), body["code"])
		assert.Equal(t, "系统内部错误", body["message"])
	})
}

func TestRedirect(t *testing.T) {
	body := perform(func(c *gin.Context) { Redirect(c, "/api/v1/store", "评价已提交", nil) })

	assert.Equal(t, float64(0), body["code"])
	assert.Equal(t, "评价已提交", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "/api/v1/store", data["redirect"])
}

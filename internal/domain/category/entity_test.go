package category

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("  Mobile Phones ", "")
	require.NoError(t, err)
	assert.Equal(t, "Mobile Phones", c.Name)
	assert.Equal(t, "mobile-phones", c.Slug)

	_, err = NewCategory("", strings.Repeat("x", 300))
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidParams, appErr.Code)
	assert.Len(t, appErr.Fields, 2)
}

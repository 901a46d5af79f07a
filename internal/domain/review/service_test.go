package review

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/marketplace/internal/domain/user"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

type memoryRepo struct {
	items  map[uint]*Review
	nextID uint
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: map[uint]*Review{}}
}

func (m *memoryRepo) Create(_ context.Context, r *Review) error {
	for _, existing := range m.items {
		if existing.UserID == r.UserID && existing.ProductID == r.ProductID {
			return ErrDuplicateReview
		}
	}
	m.nextID++
	r.ID = m.nextID
	cp := *r
	m.items[r.ID] = &cp
	return nil
}

func (m *memoryRepo) Update(_ context.Context, r *Review) error {
	cp := *r
	m.items[r.ID] = &cp
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id uint) error {
	delete(m.items, id)
	return nil
}

func (m *memoryRepo) FindByID(_ context.Context, id uint) (*Review, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, ErrReviewNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memoryRepo) ExistsByUserAndProduct(_ context.Context, userID, productID uint) (bool, error) {
	for _, r := range m.items {
		if r.UserID == userID && r.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepo) ListByProduct(_ context.Context, productID uint) ([]*Review, error) {
	var out []*Review
	for id := uint(1); id <= m.nextID; id++ {
		if r, ok := m.items[id]; ok && r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryRepo) DeleteByProduct(_ context.Context, productID uint) error {
	for id, r := range m.items {
		if r.ProductID == productID {
			delete(m.items, id)
		}
	}
	return nil
}

func rating(v int) *int { return &v }

var (
	author = user.Requester{UserID: 1}
	other  = user.Requester{UserID: 2}
)

func TestValidate(t *testing.T) {
	for _, v := range []int{1, 3, 5} {
		got, err := Validate(Input{Rating: rating(v)})
		require.NoError(t, err)
		assert.Equal(t, v, got.Rating)
	}

	for _, in := range []Input{{}, {Rating: rating(0)}, {Rating: rating(6)}, {Rating: rating(-1)}} {
		_, err := Validate(in)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "rating", appErr.Fields[0].Field)
		assert.Equal(t, "请给出1到5之间的评分", appErr.Fields[0].Message)
	}

	_, err := Validate(Input{Rating: rating(4), Text: strings.Repeat("好", 1001)})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidParams))
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("第二次评价被拒绝", func(t *testing.T) {
		svc := NewService(newMemoryRepo())
		_, err := svc.Add(ctx, author, 10, Input{Rating: rating(5)})
		require.NoError(t, err)

		_, err = svc.Add(ctx, author, 10, Input{Rating: rating(3)})
		assert.ErrorIs(t, err, ErrDuplicateReview)

		// 其他商品不受影响
		_, err = svc.Add(ctx, author, 11, Input{Rating: rating(3)})
		assert.NoError(t, err)
	})

	t.Run("重复检查先于表单校验", func(t *testing.T) {
		svc := NewService(newMemoryRepo())
		_, err := svc.Add(ctx, author, 10, Input{Rating: rating(5)})
		require.NoError(t, err)

		_, err = svc.Add(ctx, author, 10, Input{Rating: rating(9)})
		assert.ErrorIs(t, err, ErrDuplicateReview)
	})

	t.Run("评分越界", func(t *testing.T) {
		_, err := NewService(newMemoryRepo()).Add(ctx, author, 10, Input{Rating: rating(0)})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidParams))
	})

	t.Run("未登录", func(t *testing.T) {
		_, err := NewService(newMemoryRepo()).Add(ctx, user.Anonymous, 10, Input{Rating: rating(5)})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestService_Edit(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	svc := NewService(repo)
	rv, err := svc.Add(ctx, author, 10, Input{Rating: rating(5), Text: "great", ImageURL: "photos/reviews/a.jpg"})
	require.NoError(t, err)

	t.Run("修改他人评价", func(t *testing.T) {
		_, err := svc.Edit(ctx, other, 10, rv.ID, Input{Rating: rating(1)})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("评价不存在", func(t *testing.T) {
		_, err := svc.Edit(ctx, author, 10, 999, Input{Rating: rating(1)})
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})

	t.Run("评价不属于该商品", func(t *testing.T) {
		_, err := svc.Edit(ctx, author, 11, rv.ID, Input{Rating: rating(1)})
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})

	t.Run("校验失败时不修改", func(t *testing.T) {
		_, err := svc.Edit(ctx, author, 10, rv.ID, Input{Rating: rating(7)})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidParams))

		stored, _ := repo.FindByID(ctx, rv.ID)
		assert.Equal(t, 5, stored.Rating)
	})

	t.Run("原地修改，保留图片", func(t *testing.T) {
		updated, err := svc.Edit(ctx, author, 10, rv.ID, Input{Rating: rating(2), Text: "meh"})
		require.NoError(t, err)
		assert.Equal(t, rv.ID, updated.ID)
		assert.Equal(t, 2, updated.Rating)
		assert.Equal(t, "meh", updated.Text)
		assert.Equal(t, "photos/reviews/a.jpg", updated.ImageURL)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryRepo())
	rv, err := svc.Add(ctx, author, 10, Input{Rating: rating(5)})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, other, 10, rv.ID), ErrPermissionDenied)

	require.NoError(t, svc.Delete(ctx, author, 10, rv.ID))
	has, err := svc.HasReviewed(ctx, author, 10)
	require.NoError(t, err)
	assert.False(t, has)

	// 删除后可以重新评价
	_, err = svc.Add(ctx, author, 10, Input{Rating: rating(4)})
	assert.NoError(t, err)
}

func TestService_HasReviewed(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryRepo())
	_, err := svc.Add(ctx, author, 10, Input{Rating: rating(5)})
	require.NoError(t, err)

	has, err := svc.HasReviewed(ctx, author, 10)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = svc.HasReviewed(ctx, user.Anonymous, 10)
	require.NoError(t, err)
	assert.False(t, has)
}

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

type memoryRepo struct {
	byEmail map[string]*User
	nextID  uint
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byEmail: map[string]*User{}}
}

func (r *memoryRepo) Create(_ context.Context, u *User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return apperrors.ErrEmailDuplicate
	}
	r.nextID++
	u.ID = r.nextID
	r.byEmail[u.Email] = u
	return nil
}

func (r *memoryRepo) FindByID(_ context.Context, id uint) (*User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memoryRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memoryRepo) Update(_ context.Context, u *User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id uint) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

func TestMain(m *testing.M) {
	hashCost = 4
	m.Run()
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("注册成功，邮箱统一小写", func(t *testing.T) {
		svc := NewService(newMemoryRepo())
		u, err := svc.Register(ctx, RegisterInput{
			Email: " Seller@Example.com ", Password: "secret123", FirstName: "Ann", LastName: "Lee",
		})
		require.NoError(t, err)
		assert.Equal(t, "seller@example.com", u.Email)
		assert.NotEqual(t, "secret123", u.Password)
		assert.NotZero(t, u.ID)
	})

	tests := []struct {
		name string
		in   RegisterInput
		code int
	}{
		{"邮箱格式错误", RegisterInput{Email: "bad", Password: "secret123", FirstName: "A"}, apperrors.ErrCodeInvalidParams},
		{"密码太短", RegisterInput{Email: "a@b.com", Password: "s1", FirstName: "A"}, apperrors.ErrCodeWeakPassword},
		{"密码没有数字", RegisterInput{Email: "a@b.com", Password: "secretsecret", FirstName: "A"}, apperrors.ErrCodeWeakPassword},
		{"名字为空", RegisterInput{Email: "a@b.com", Password: "secret123", FirstName: "  "}, apperrors.ErrCodeInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(newMemoryRepo()).Register(ctx, tt.in)
			assert.True(t, apperrors.HasCode(err, tt.code), "got %v", err)
		})
	}

	t.Run("邮箱重复", func(t *testing.T) {
		svc := NewService(newMemoryRepo())
		in := RegisterInput{Email: "a@b.com", Password: "secret123", FirstName: "A"}
		_, err := svc.Register(ctx, in)
		require.NoError(t, err)
		_, err = svc.Register(ctx, in)
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryRepo())
	_, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "secret123", FirstName: "A"})
	require.NoError(t, err)

	u, err := svc.Login(ctx, "A@B.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", u.Email)

	_, err = svc.Login(ctx, "a@b.com", "wrong1234")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)

	_, err = svc.Login(ctx, "nobody@b.com", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ann Lee", (&User{FirstName: "Ann", LastName: "Lee"}).DisplayName())
	assert.Equal(t, "Ann", (&User{FirstName: "Ann"}).DisplayName())
	assert.Equal(t, "a@b.com", (&User{Email: "a@b.com"}).DisplayName())
}

func TestRequester(t *testing.T) {
	assert.False(t, Anonymous.IsAuthenticated())
	assert.False(t, Anonymous.Is(0))

	r := Requester{UserID: 3}
	assert.True(t, r.IsAuthenticated())
	assert.True(t, r.Is(3))
	assert.False(t, r.Is(4))
}

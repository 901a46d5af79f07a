package product

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/marketplace/internal/domain/category"
	"github.com/xiebiao/marketplace/internal/domain/user"
	apperrors "github.com/xiebiao/marketplace/pkg/errors"
)

// =========================================
// 内存版仓储（仅用于领域服务测试）
// =========================================

type memoryProducts struct {
	items  map[uint]*Product
	nextID uint
}

func newMemoryProducts() *memoryProducts {
	return &memoryProducts{items: map[uint]*Product{}}
}

func (m *memoryProducts) Create(_ context.Context, p *Product) error {
	for _, existing := range m.items {
		if existing.Name == p.Name || existing.Slug == p.Slug {
			return ErrProductDuplicate
		}
	}
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memoryProducts) Update(_ context.Context, p *Product) error {
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memoryProducts) Delete(_ context.Context, id uint) error {
	delete(m.items, id)
	return nil
}

func (m *memoryProducts) FindByID(_ context.Context, id uint) (*Product, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memoryProducts) FindBySlug(_ context.Context, categoryID uint, slug string) (*Product, error) {
	for _, p := range m.items {
		if p.CategoryID == categoryID && p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrProductNotFound
}

func (m *memoryProducts) match(f ListFilter) []*Product {
	var out []*Product
	kw := strings.ToLower(f.Keyword)
	for _, p := range m.items {
		if f.OnlyListed && !p.IsListed() {
			continue
		}
		if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
			continue
		}
		if f.OwnerID != nil && !p.IsOwnedBy(*f.OwnerID) {
			continue
		}
		if kw != "" && !strings.Contains(strings.ToLower(p.Name), kw) &&
			!strings.Contains(strings.ToLower(p.Description), kw) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		switch f.OrderBy {
		case OrderIDDesc:
			return out[i].ID > out[j].ID
		case OrderCreatedDesc:
			return out[i].CreatedAt.After(out[j].CreatedAt)
		default:
			return out[i].ID < out[j].ID
		}
	})
	return out
}

func (m *memoryProducts) Count(_ context.Context, f ListFilter) (int64, error) {
	return int64(len(m.match(f))), nil
}

func (m *memoryProducts) Find(_ context.Context, f ListFilter, offset, limit int) ([]*Product, error) {
	all := m.match(f)
	if limit <= 0 {
		return all, nil
	}
	if offset > len(all) {
		return []*Product{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

type memoryVariations struct {
	items  map[uint]*Variation
	nextID uint
}

func (m *memoryVariations) Create(_ context.Context, v *Variation) error {
	m.nextID++
	v.ID = m.nextID
	m.items[v.ID] = v
	return nil
}

func (m *memoryVariations) FindByID(_ context.Context, id uint) (*Variation, error) {
	v, ok := m.items[id]
	if !ok {
		return nil, ErrVariationNotFound
	}
	return v, nil
}

func (m *memoryVariations) Update(_ context.Context, v *Variation) error {
	m.items[v.ID] = v
	return nil
}

func (m *memoryVariations) ListActive(_ context.Context, productID uint, c VariationCategory) ([]*Variation, error) {
	var out []*Variation
	for id := uint(1); id <= m.nextID; id++ {
		v, ok := m.items[id]
		if ok && v.ProductID == productID && v.Category == c && v.IsActive {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memoryVariations) DeleteByProduct(_ context.Context, productID uint) error {
	for id, v := range m.items {
		if v.ProductID == productID {
			delete(m.items, id)
		}
	}
	return nil
}

type memoryCategories map[uint]*category.Category

func (m memoryCategories) Create(_ context.Context, c *category.Category) error {
	c.ID = uint(len(m) + 1)
	m[c.ID] = c
	return nil
}

func (m memoryCategories) FindByID(_ context.Context, id uint) (*category.Category, error) {
	if c, ok := m[id]; ok {
		return c, nil
	}
	return nil, category.ErrCategoryNotFound
}

func (m memoryCategories) FindBySlug(_ context.Context, slug string) (*category.Category, error) {
	for _, c := range m {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (m memoryCategories) List(_ context.Context) ([]*category.Category, error) {
	var out []*category.Category
	for _, c := range m {
		out = append(out, c)
	}
	return out, nil
}

// =========================================
// 测试
// =========================================

type fixture struct {
	svc        Service
	products   *memoryProducts
	variations *memoryVariations
}

func newFixture() *fixture {
	products := newMemoryProducts()
	variations := &memoryVariations{items: map[uint]*Variation{}}
	cats := memoryCategories{
		1: {ID: 1, Name: "Phones", Slug: "phones"},
		2: {ID: 2, Name: "Shoes", Slug: "shoes"},
	}
	return &fixture{
		svc:        NewService(products, variations, cats),
		products:   products,
		variations: variations,
	}
}

func uintPtr(v uint) *uint { return &v }

var (
	owner    = user.Requester{UserID: 1}
	stranger = user.Requester{UserID: 2}
	staff    = user.Requester{UserID: 99, IsStaff: true}
)

func (f *fixture) create(t *testing.T, name string) *Product {
	t.Helper()
	in := validInput()
	in.Name = name
	p, err := f.svc.CreateProduct(context.Background(), uintPtr(owner.UserID), in)
	require.NoError(t, err)
	return p
}

// seed 直接写入仓储，绕过审核流程
func (f *fixture) seed(name, description string, categoryID uint, ownerID uint, approved, active bool, createdAt time.Time) *Product {
	p := &Product{
		Name: name, Slug: strings.ToLower(strings.ReplaceAll(name, " ", "-")), Description: description,
		CategoryID: categoryID, OwnerID: uintPtr(ownerID), IsApproved: approved, Status: active,
		CreatedAt: createdAt,
	}
	_ = f.products.Create(context.Background(), p)
	return p
}

func TestService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("新商品未审核且默认上架", func(t *testing.T) {
		f := newFixture()
		p := f.create(t, "Phone Case")

		assert.False(t, p.IsApproved)
		assert.True(t, p.Status)
		assert.Equal(t, "phone-case", p.Slug)
		assert.Equal(t, "/api/v1/store/category/phones/phone-case", p.URL())
		assert.True(t, p.IsOwnedBy(owner.UserID))
	})

	t.Run("后台创建没有所有者，同样未审核", func(t *testing.T) {
		f := newFixture()
		p, err := f.svc.CreateProduct(ctx, nil, validInput())
		require.NoError(t, err)
		assert.Nil(t, p.OwnerID)
		assert.False(t, p.IsApproved)
	})

	t.Run("折扣价等于原价被拒绝", func(t *testing.T) {
		in := validInput()
		in.Price = int64Ptr(100)
		in.DiscountPrice = decPtr("100")
		_, err := newFixture().svc.CreateProduct(ctx, nil, in)
		assert.Equal(t, "折扣价必须低于原价", fieldsOf(t, err)["discount_price"])
	})

	t.Run("折扣价低于原价通过", func(t *testing.T) {
		in := validInput()
		in.DiscountPrice = decPtr("50")
		_, err := newFixture().svc.CreateProduct(ctx, nil, in)
		assert.NoError(t, err)
	})

	t.Run("分类不存在", func(t *testing.T) {
		in := validInput()
		in.CategoryID = 42
		_, err := newFixture().svc.CreateProduct(ctx, nil, in)
		assert.Equal(t, "所选分类不存在", fieldsOf(t, err)["category_id"])
	})

	t.Run("名称重复", func(t *testing.T) {
		f := newFixture()
		f.create(t, "Phone Case")
		_, err := f.svc.CreateProduct(ctx, nil, validInput())
		assert.ErrorIs(t, err, ErrProductDuplicate)
	})
}

func TestService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("所有者编辑，审核状态和图片保持不变", func(t *testing.T) {
		f := newFixture()
		p := f.create(t, "Phone Case")
		_, err := f.svc.SetApproval(ctx, staff, p.ID, true)
		require.NoError(t, err)

		in := validInput()
		in.Name = "Leather Phone Case"
		in.ImageURL = ""
		in.CategoryID = 2

		updated, err := f.svc.UpdateProduct(ctx, owner, p.ID, in)
		require.NoError(t, err)
		assert.True(t, updated.IsApproved)
		assert.Equal(t, "leather-phone-case", updated.Slug)
		assert.Equal(t, "photos/products/case.jpg", updated.ImageURL)
		assert.Equal(t, "/api/v1/store/category/shoes/leather-phone-case", updated.URL())
	})

	t.Run("非所有者无权编辑", func(t *testing.T) {
		f := newFixture()
		p := f.create(t, "Phone Case")
		_, err := f.svc.UpdateProduct(ctx, stranger, p.ID, validInput())
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("运营可以编辑", func(t *testing.T) {
		f := newFixture()
		p := f.create(t, "Phone Case")
		in := validInput()
		in.Stock = intPtr(0)
		updated, err := f.svc.UpdateProduct(ctx, staff, p.ID, in)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Stock)
	})

	t.Run("编辑时校验折扣价", func(t *testing.T) {
		f := newFixture()
		p := f.create(t, "Phone Case")
		in := validInput()
		in.DiscountPrice = decPtr("150")
		_, err := f.svc.UpdateProduct(ctx, owner, p.ID, in)
		assert.Contains(t, fieldsOf(t, err), "discount_price")
	})

	t.Run("未登录", func(t *testing.T) {
		f := newFixture()
		p := f.create(t, "Phone Case")
		_, err := f.svc.UpdateProduct(ctx, user.Anonymous, p.ID, validInput())
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestService_Moderation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := f.create(t, "Phone Case")

	_, err := f.svc.SetApproval(ctx, owner, p.ID, true)
	assert.ErrorIs(t, err, ErrPermissionDenied, "所有者不能审核自己的商品")

	approved, err := f.svc.SetApproval(ctx, staff, p.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	inactive, err := f.svc.SetStatus(ctx, owner, p.ID, false)
	require.NoError(t, err)
	assert.False(t, inactive.Status)
	assert.True(t, inactive.IsApproved, "上下架不影响审核状态")

	_, err = f.svc.SetStatus(ctx, stranger, p.ID, true)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.svc.SetApproval(ctx, staff, 404, true)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_GetVisible(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := f.create(t, "Phone Case")

	t.Run("未审核商品对陌生人不可见", func(t *testing.T) {
		_, err := f.svc.GetVisible(ctx, stranger, "phones", p.Slug)
		assert.ErrorIs(t, err, ErrProductNotFound)
		_, err = f.svc.GetVisible(ctx, user.Anonymous, "phones", p.Slug)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("未审核商品对所有者和运营可见", func(t *testing.T) {
		got, err := f.svc.GetVisible(ctx, owner, "phones", p.Slug)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)

		_, err = f.svc.GetVisible(ctx, staff, "phones", p.Slug)
		assert.NoError(t, err)
	})

	t.Run("分类与Slug不匹配", func(t *testing.T) {
		_, err := f.svc.GetVisible(ctx, owner, "shoes", p.Slug)
		assert.ErrorIs(t, err, ErrProductNotFound)
		_, err = f.svc.GetVisible(ctx, owner, "unknown", p.Slug)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("审核后所有人可见", func(t *testing.T) {
		_, err := f.svc.SetApproval(ctx, staff, p.ID, true)
		require.NoError(t, err)
		_, err = f.svc.GetVisible(ctx, user.Anonymous, "phones", p.Slug)
		assert.NoError(t, err)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	now := time.Now()
	f.seed("A", "", 1, 1, true, true, now)
	f.seed("B", "", 1, 1, false, true, now) // 未审核
	f.seed("C", "", 2, 2, true, true, now)
	f.seed("D", "", 1, 2, true, false, now) // 已下架
	f.seed("E", "", 1, 1, true, true, now)
	f.seed("F", "", 2, 1, true, true, now)

	t.Run("只返回已上架且已审核，按ID升序分页", func(t *testing.T) {
		items, page, err := f.svc.List(ctx, ListFilter{}, "1", 3)
		require.NoError(t, err)
		assert.Equal(t, int64(4), page.Total)
		assert.Equal(t, 2, page.NumPages)
		assert.Equal(t, []string{"A", "C", "E"}, names(items))

		items, page, err = f.svc.List(ctx, ListFilter{}, "2", 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"F"}, names(items))
		assert.False(t, page.HasNext())
	})

	t.Run("页码越界时夹到有效范围", func(t *testing.T) {
		items, page, err := f.svc.List(ctx, ListFilter{}, "99", 3)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Number)
		assert.Equal(t, []string{"F"}, names(items))

		_, page, err = f.svc.List(ctx, ListFilter{}, "abc", 3)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Number)
	})

	t.Run("按分类过滤", func(t *testing.T) {
		items, _, err := f.svc.List(ctx, ListFilter{CategoryID: uintPtr(1)}, "", 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "E"}, names(items))
	})

	t.Run("卖家列表按ID倒序", func(t *testing.T) {
		items, _, err := f.svc.List(ctx, ListFilter{OwnerID: uintPtr(1), OrderBy: OrderIDDesc}, "", 4)
		require.NoError(t, err)
		assert.Equal(t, []string{"F", "E", "A"}, names(items))
	})

	t.Run("空结果仍有一页", func(t *testing.T) {
		items, page, err := f.svc.List(ctx, ListFilter{OwnerID: uintPtr(77)}, "3", 4)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 1, page.NumPages)
	})
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	now := time.Now()
	f.seed("Silicone Cover", "Phone case for everyday use", 1, 1, true, true, now.Add(-time.Hour))
	f.seed("Smartphone X", "", 1, 1, true, true, now)
	f.seed("Hidden Phone", "", 1, 1, false, true, now)
	f.seed("Shoes", "running", 2, 1, true, true, now)

	items, err := f.svc.Search(ctx, " phone ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Smartphone X", "Silicone Cover"}, names(items))

	items, err = f.svc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_Variations(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := f.create(t, "Phone Case")

	red, err := f.svc.AddVariation(ctx, owner, p.ID, VariationColor, "red")
	require.NoError(t, err)
	_, err = f.svc.AddVariation(ctx, owner, p.ID, VariationColor, "blue")
	require.NoError(t, err)
	_, err = f.svc.AddVariation(ctx, owner, p.ID, VariationSize, "XL")
	require.NoError(t, err)

	_, err = f.svc.AddVariation(ctx, stranger, p.ID, VariationSize, "L")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.svc.SetVariationActive(ctx, owner, red.ID, false)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	_, err = f.svc.SetVariationActive(ctx, staff, red.ID, false)
	require.NoError(t, err)

	colors, sizes, err := f.svc.Variations(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, colors, 1)
	assert.Equal(t, "blue", colors[0].Value)
	require.Len(t, sizes, 1)
	assert.Equal(t, "XL", sizes[0].Value)
}

func names(items []*Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

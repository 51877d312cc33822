package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRepo 记录传入的查询参数,并提供内存AND匹配实现
type recordingRepo struct {
	lastParams ListParams
	pizzas     []*Pizza
}

func (r *recordingRepo) FindPizzaByID(ctx context.Context, id uint) (*Pizza, error) {
	return nil, ErrPizzaNotFound
}

func (r *recordingRepo) FindPizzaBySlug(ctx context.Context, slug string) (*Pizza, error) {
	return nil, ErrPizzaNotFound
}

// ListPizzas 按与MySQL实现相同的AND语义在内存中过滤
func (r *recordingRepo) ListPizzas(ctx context.Context, params ListParams) ([]*Pizza, int64, error) {
	r.lastParams = params
	var matched []*Pizza
	for _, p := range r.pizzas {
		if !p.InStock {
			continue
		}
		ok := true
		for _, ingID := range params.IngredientIDs {
			if !p.HasIngredient(ingID) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, p)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *recordingRepo) ListCategories(ctx context.Context) ([]*Category, error) { return nil, nil }

func (r *recordingRepo) FindCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	return nil, ErrCategoryNotFound
}

func (r *recordingRepo) ListIngredients(ctx context.Context) ([]*Ingredient, error) {
	return nil, nil
}

// TestService_ListPizzas_Normalization 测试分页参数规范化
func TestService_ListPizzas_Normalization(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	cases := []struct {
		name             string
		page, pageSize   int
		wantPage, wantPS int
	}{
		{"零值取默认", 0, 0, 1, 20},
		{"负数取默认", -3, -1, 1, 20},
		{"超上限收敛", 2, 500, 2, 20},
		{"合法值保留", 3, 50, 3, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.ListPizzas(context.Background(), ListParams{Page: tc.page, PageSize: tc.pageSize})
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, repo.lastParams.Page)
			assert.Equal(t, tc.wantPS, repo.lastParams.PageSize)
		})
	}
}

// TestService_ListPizzas_IngredientAND 配料筛选为严格AND语义
func TestService_ListPizzas_IngredientAND(t *testing.T) {
	mozzarella := Ingredient{ID: 1, Name: "马苏里拉"}
	pepperoni := Ingredient{ID: 2, Name: "辣肠"}
	basil := Ingredient{ID: 3, Name: "罗勒"}

	repo := &recordingRepo{pizzas: []*Pizza{
		{ID: 1, Name: "玛格丽特", InStock: true, Ingredients: []Ingredient{mozzarella, basil}},
		{ID: 2, Name: "意式辣肠", InStock: true, Ingredients: []Ingredient{mozzarella, pepperoni}},
		{ID: 3, Name: "全家福", InStock: true, Ingredients: []Ingredient{mozzarella, pepperoni, basil}},
	}}
	svc := NewService(repo)

	t.Run("单配料返回所有包含者", func(t *testing.T) {
		pizzas, total, err := svc.ListPizzas(context.Background(), ListParams{IngredientIDs: []uint{2}})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, pizzas, 2)
	})

	t.Run("多配料必须同时包含", func(t *testing.T) {
		pizzas, total, err := svc.ListPizzas(context.Background(), ListParams{IngredientIDs: []uint{2, 3}})
		require.NoError(t, err)
		// 只有全家福同时有辣肠和罗勒;玛格丽特有罗勒没辣肠,辣肠披萨有辣肠没罗勒
		require.Equal(t, int64(1), total)
		assert.Equal(t, "全家福", pizzas[0].Name)
	})

	t.Run("无人全部满足时返回空", func(t *testing.T) {
		_, total, err := svc.ListPizzas(context.Background(), ListParams{IngredientIDs: []uint{1, 2, 3, 99}})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}

// TestPizza_HasIngredient 测试配料包含判断
func TestPizza_HasIngredient(t *testing.T) {
	p := &Pizza{Ingredients: []Ingredient{{ID: 1}, {ID: 5}}}

	assert.True(t, p.HasIngredient(1))
	assert.True(t, p.HasIngredient(5))
	assert.False(t, p.HasIngredient(2))
}

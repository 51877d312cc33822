package catalog

import (
	"context"

	"github.com/xiebiao/pizzeria/internal/domain/catalog"
	"github.com/xiebiao/pizzeria/internal/infrastructure/persistence/redis"
)

// GetSidebarUseCase 侧边栏用例
// 返回分类(含披萨数)与配料全集,菜单页每次渲染都要用,走缓存
type GetSidebarUseCase struct {
	catalogService catalog.Service
	cache          *redis.CatalogCache
}

// NewGetSidebarUseCase 创建侧边栏用例
func NewGetSidebarUseCase(catalogService catalog.Service, cache *redis.CatalogCache) *GetSidebarUseCase {
	return &GetSidebarUseCase{catalogService: catalogService, cache: cache}
}

// CategoryView 分类视图
type CategoryView struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	PizzaCount int64  `json:"pizza_count"`
}

// IngredientView 配料视图
type IngredientView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SidebarResponse 侧边栏响应
type SidebarResponse struct {
	Categories  []CategoryView   `json:"categories"`
	Ingredients []IngredientView `json:"ingredients"`
}

// Execute 执行查询
func (uc *GetSidebarUseCase) Execute(ctx context.Context) (*SidebarResponse, error) {
	// 1. 读缓存
	if cached, _ := uc.cache.GetSidebar(ctx); cached != nil {
		return toSidebarResponse(cached.Categories, cached.Ingredients), nil
	}

	// 2. 回源数据库
	categories, err := uc.catalogService.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	ingredients, err := uc.catalogService.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存
	_ = uc.cache.SetSidebar(ctx, &redis.Sidebar{
		Categories:  categories,
		Ingredients: ingredients,
	})

	return toSidebarResponse(categories, ingredients), nil
}

func toSidebarResponse(categories []*catalog.Category, ingredients []*catalog.Ingredient) *SidebarResponse {
	resp := &SidebarResponse{
		Categories:  make([]CategoryView, 0, len(categories)),
		Ingredients: make([]IngredientView, 0, len(ingredients)),
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, CategoryView{
			ID:         c.ID,
			Name:       c.Name,
			Slug:       c.Slug,
			PizzaCount: c.PizzaCount,
		})
	}
	for _, ing := range ingredients {
		resp.Ingredients = append(resp.Ingredients, IngredientView{ID: ing.ID, Name: ing.Name})
	}
	return resp
}

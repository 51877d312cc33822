package catalog

import (
	"context"

	"github.com/xiebiao/pizzeria/internal/domain/catalog"
)

// ListPizzasUseCase 披萨列表用例
// 菜单页主查询:价格区间、描述关键词、分类、配料组合筛选
type ListPizzasUseCase struct {
	catalogService catalog.Service
}

// NewListPizzasUseCase 创建披萨列表用例
func NewListPizzasUseCase(catalogService catalog.Service) *ListPizzasUseCase {
	return &ListPizzasUseCase{catalogService: catalogService}
}

// ListPizzasRequest 列表请求
// 价格参数单位为分;IngredientIDs为严格AND匹配
type ListPizzasRequest struct {
	PriceGT       int64
	PriceLT       int64
	Keyword       string
	CategorySlug  string
	IngredientIDs []uint
	Page          int
	PageSize      int
	SortBy        string
}

// PizzaView 披萨列表项视图
type PizzaView struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Price       int64    `json:"price"` // 分
	InStock     bool     `json:"in_stock"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Ingredients []string `json:"ingredients"`
}

// ListPizzasResponse 列表响应
type ListPizzasResponse struct {
	Pizzas []PizzaView `json:"pizzas"`
	Total  int64       `json:"total"`
}

// Execute 执行查询
func (uc *ListPizzasUseCase) Execute(ctx context.Context, req ListPizzasRequest) (*ListPizzasResponse, error) {
	pizzas, total, err := uc.catalogService.ListPizzas(ctx, catalog.ListParams{
		PriceGT:       req.PriceGT,
		PriceLT:       req.PriceLT,
		Keyword:       req.Keyword,
		CategorySlug:  req.CategorySlug,
		IngredientIDs: req.IngredientIDs,
		Page:          req.Page,
		PageSize:      req.PageSize,
		SortBy:        req.SortBy,
	})
	if err != nil {
		return nil, err
	}

	views := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		views = append(views, toPizzaView(p))
	}
	return &ListPizzasResponse{Pizzas: views, Total: total}, nil
}

// toPizzaView 实体转视图
func toPizzaView(p *catalog.Pizza) PizzaView {
	ingredients := make([]string, 0, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		ingredients = append(ingredients, ing.Name)
	}
	return PizzaView{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Price:       p.Price,
		InStock:     p.InStock,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Ingredients: ingredients,
	}
}

package dto

import (
	"fmt"

	appcatalog "github.com/xiebiao/pizzeria/internal/application/catalog"
)

// ListPizzasQuery 披萨列表查询参数
// 价格参数单位为分,区间为开区间;ingredients为严格AND匹配:
// 只返回同时包含所有选中配料的披萨
type ListPizzasQuery struct {
	PriceGT       int64  `form:"price_gt" binding:"omitempty,min=0"`
	PriceLT       int64  `form:"price_lt" binding:"omitempty,min=0"`
	Keyword       string `form:"q" binding:"omitempty,max=100"`
	CategorySlug  string `form:"category" binding:"omitempty,max=255"`
	IngredientIDs []uint `form:"ingredients" binding:"omitempty,dive,min=1"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	SortBy        string `form:"sort" binding:"omitempty,oneof=price_asc price_desc created_at_desc"`
}

// PizzaResponse 披萨响应
type PizzaResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Price       int64    `json:"price"`
	PriceYuan   string   `json:"price_yuan" example:"125.00"` // 价格(元),方便前端显示
	InStock     bool     `json:"in_stock"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Ingredients []string `json:"ingredients"`
}

// ToPizzaResponse 应用层视图转HTTP响应
func ToPizzaResponse(v appcatalog.PizzaView) PizzaResponse {
	return PizzaResponse{
		ID:          v.ID,
		Name:        v.Name,
		Slug:        v.Slug,
		Price:       v.Price,
		PriceYuan:   FormatPriceYuan(v.Price),
		InStock:     v.InStock,
		Description: v.Description,
		ImageURL:    v.ImageURL,
		Ingredients: v.Ingredients,
	}
}

// FormatPriceYuan 格式化价格(分→元)
func FormatPriceYuan(priceFen int64) string {
	yuan := float64(priceFen) / 100
	return fmt.Sprintf("%.2f", yuan)
}

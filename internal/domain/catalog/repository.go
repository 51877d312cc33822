package catalog

import (
	"context"
)

// ListParams 披萨列表查询参数
// PriceGT/PriceLT单位为分;IngredientIDs为严格AND匹配:
// 结果中的每个披萨必须同时包含所有选中的配料
type ListParams struct {
	PriceGT       int64  // 价格下限(不含),0表示不限
	PriceLT       int64  // 价格上限(不含),0表示不限
	Keyword       string // 描述模糊匹配
	CategorySlug  string // 分类slug
	IngredientIDs []uint // 配料ID集合(AND匹配)
	Page          int
	PageSize      int
	SortBy        string // price_asc | price_desc | created_at_desc
}

// Repository 目录仓储接口(依赖倒置:domain定义,infrastructure实现)
// 购物车子系统只消费读方法;披萨/分类的写入属于后台管理,不在本核心内
type Repository interface {
	// FindPizzaByID 根据ID查找披萨(含配料)
	FindPizzaByID(ctx context.Context, id uint) (*Pizza, error)

	// FindPizzaBySlug 根据Slug查找披萨(含配料)
	FindPizzaBySlug(ctx context.Context, slug string) (*Pizza, error)

	// ListPizzas 按条件分页查询在售披萨
	ListPizzas(ctx context.Context, params ListParams) ([]*Pizza, int64, error)

	// ListCategories 查询全部分类,附带每个分类的披萨数量(侧边栏)
	ListCategories(ctx context.Context) ([]*Category, error)

	// FindCategoryBySlug 根据Slug查找分类
	FindCategoryBySlug(ctx context.Context, slug string) (*Category, error)

	// ListIngredients 查询全部配料(筛选面板)
	ListIngredients(ctx context.Context) ([]*Ingredient, error)
}

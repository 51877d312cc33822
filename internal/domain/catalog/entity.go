package catalog

import (
	"time"
)

// Pizza 披萨实体(聚合根)
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. Name与Slug均有唯一索引,Slug用于URL寻址
// 3. 对购物车子系统而言披萨是只读的:定价只读取Price与InStock,从不回写
type Pizza struct {
	ID          uint
	Name        string       // 名称
	Slug        string       // URL标识
	Price       int64        // 价格(单位:分,1元=100分)
	CategoryID  uint         // 所属分类ID
	InStock     bool         // 是否在售
	Description string       // 描述
	ImageURL    string       // 图片URL
	Ingredients []Ingredient // 配料集合
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasIngredient 判断披萨是否包含指定配料
func (p *Pizza) HasIngredient(ingredientID uint) bool {
	for _, ing := range p.Ingredients {
		if ing.ID == ingredientID {
			return true
		}
	}
	return false
}

// Ingredient 配料实体
type Ingredient struct {
	ID   uint
	Name string
}

// Category 分类实体
// PizzaCount是侧边栏展示用的冗余统计,由查询时聚合得出,不落库
type Category struct {
	ID         uint
	Name       string
	Slug       string
	PizzaCount int64
}

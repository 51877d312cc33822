package cart

import (
	"context"

	"github.com/xiebiao/pizzeria/internal/domain/cart"
	"github.com/xiebiao/pizzeria/internal/domain/catalog"
)

// TxManager 事务管理器接口
// 由infrastructure/persistence/mysql.TxManager实现,
// 定义在消费方便于单元测试注入假实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// LineItemView 购物车条目视图
type LineItemView struct {
	ID         uint   `json:"id"`
	PizzaID    uint   `json:"pizza_id"`
	PizzaName  string `json:"pizza_name"`
	PizzaSlug  string `json:"pizza_slug"`
	Qty        int    `json:"qty"`
	FinalPrice int64  `json:"final_price"` // 小计(分)
}

// CartView 购物车视图
// TotalQty/TotalPrice直接取自存储的聚合值,角标和侧边栏零成本展示
type CartView struct {
	ID         uint           `json:"id"`
	TotalQty   int            `json:"total_qty"`
	TotalPrice int64          `json:"total_price"` // 分
	InOrder    bool           `json:"in_order"`
	Items      []LineItemView `json:"items"`
}

// buildCartView 构建购物车视图,逐条目补齐披萨展示信息
// 披萨已被删除的条目降级为只展示ID
func buildCartView(ctx context.Context, c *cart.Cart, catalogRepo catalog.Repository) *CartView {
	view := &CartView{
		ID:         c.ID,
		TotalQty:   c.TotalQty,
		TotalPrice: c.TotalPrice,
		InOrder:    c.InOrder,
		Items:      make([]LineItemView, 0, len(c.Items)),
	}
	for _, item := range c.Items {
		iv := LineItemView{
			ID:         item.ID,
			PizzaID:    item.PizzaID,
			Qty:        item.Qty,
			FinalPrice: item.FinalPrice,
		}
		if pizza, err := catalogRepo.FindPizzaByID(ctx, item.PizzaID); err == nil {
			iv.PizzaName = pizza.Name
			iv.PizzaSlug = pizza.Slug
		}
		view.Items = append(view.Items, iv)
	}
	return view
}

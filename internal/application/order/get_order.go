package order

import (
	"context"
	"time"

	"github.com/xiebiao/pizzeria/internal/domain/cart"
	"github.com/xiebiao/pizzeria/internal/domain/order"
)

// GetOrderUseCase 订单详情用例
// 明细来自结单时冻结的购物车(订单引用的购物车即明细快照)
type GetOrderUseCase struct {
	orderRepo order.Repository
	cartRepo  cart.Repository
}

// NewGetOrderUseCase 创建订单详情用例
func NewGetOrderUseCase(orderRepo order.Repository, cartRepo cart.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo, cartRepo: cartRepo}
}

// OrderItemView 订单明细项视图
type OrderItemView struct {
	PizzaID    uint  `json:"pizza_id"`
	Qty        int   `json:"qty"`
	FinalPrice int64 `json:"final_price"` // 结单时冻结的小计(分)
}

// OrderView 订单视图
type OrderView struct {
	ID            uint            `json:"id"`
	OrderNo       string          `json:"order_no"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Status        int             `json:"status"`
	StatusText    string          `json:"status_text"`
	Delivery      string          `json:"delivery"`
	Comment       string          `json:"comment,omitempty"`
	TotalQty      int             `json:"total_qty"`
	TotalPrice    int64           `json:"total_price"` // 分
	Items         []OrderItemView `json:"items,omitempty"`
	OrderDateTime string          `json:"order_date_time"`
	CreatedAt     string          `json:"created_at"`
}

// Execute 执行查询
// 归属校验:订单不属于当前顾客时按"不存在"处理,不泄露他人订单的存在性
func (uc *GetOrderUseCase) Execute(ctx context.Context, customerID uint, orderNo string) (*OrderView, error) {
	o, err := uc.orderRepo.FindByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(customerID) {
		return nil, order.ErrOrderNotFound
	}

	// 明细快照
	snapshot, err := uc.cartRepo.FindByID(ctx, o.CartID)
	if err != nil {
		return nil, err
	}

	view := toOrderView(o)
	view.TotalQty = snapshot.TotalQty
	view.TotalPrice = snapshot.TotalPrice
	view.Items = make([]OrderItemView, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		view.Items = append(view.Items, OrderItemView{
			PizzaID:    item.PizzaID,
			Qty:        item.Qty,
			FinalPrice: item.FinalPrice,
		})
	}
	return view, nil
}

// toOrderView 实体转视图(不含明细)
func toOrderView(o *order.Order) *OrderView {
	return &OrderView{
		ID:            o.ID,
		OrderNo:       o.OrderNo,
		FirstName:     o.FirstName,
		LastName:      o.LastName,
		Phone:         o.Phone,
		Address:       o.Address,
		Status:        int(o.Status),
		StatusText:    o.Status.String(),
		Delivery:      string(o.Delivery),
		Comment:       o.Comment,
		OrderDateTime: o.OrderDateTime.Format(time.RFC3339),
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}

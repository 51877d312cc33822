package order

import (
	"context"

	"github.com/xiebiao/pizzeria/internal/domain/order"
)

// ListOrdersUseCase 订单历史用例
// 顾客的全部订单,新订单在前
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单历史用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// ListOrdersRequest 订单历史请求
type ListOrdersRequest struct {
	CustomerID uint
	Page       int
	PageSize   int
}

// ListOrdersResponse 订单历史响应
type ListOrdersResponse struct {
	Orders []*OrderView `json:"orders"`
	Total  int64        `json:"total"`
}

// Execute 执行查询
func (uc *ListOrdersUseCase) Execute(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}

	orders, total, err := uc.orderRepo.ListByCustomerID(ctx, req.CustomerID, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	views := make([]*OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}
	return &ListOrdersResponse{Orders: views, Total: total}, nil
}

package order

import (
	"context"
)

// Repository 订单仓储接口
// 订单创建必须与购物车结单在同一事务中(通过context传递事务)
type Repository interface {
	// Create 创建订单
	Create(ctx context.Context, o *Order) error

	// FindByID 根据ID查找订单
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByOrderNo 根据订单号查找订单
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// FindByCartID 查找引用指定购物车的订单,没有返回ErrOrderNotFound
	FindByCartID(ctx context.Context, cartID uint) (*Order, error)

	// UpdateStatus 持久化状态流转(只更新Status与UpdatedAt)
	UpdateStatus(ctx context.Context, o *Order) error

	// ListByCustomerID 查询顾客的订单历史,新订单在前,支持分页
	ListByCustomerID(ctx context.Context, customerID uint, page, pageSize int) ([]*Order, int64, error)
}

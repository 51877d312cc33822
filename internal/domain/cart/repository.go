package cart

import (
	"context"
)

// Repository 购物车仓储接口(依赖倒置:domain定义,infrastructure实现)
//
// 并发约定:
// 1. FindOrCreateOpen必须是有效原子的:同一顾客并发首次访问只产生一个打开的购物车
//    (实现依赖存储层的唯一约束,冲突后重查)
// 2. 所有变更操作必须在TxManager事务内执行,先LockByID锁定购物车行,
//    再改条目,最后RecomputeTotals,保证读者看不到聚合值与条目不一致的中间态
type Repository interface {
	// FindOrCreateOpen 返回顾客唯一的打开购物车,不存在则创建
	// N次并发调用只产生一行(唯一约束冲突触发重查)
	FindOrCreateOpen(ctx context.Context, customerID uint) (*Cart, error)

	// FindByID 根据ID查找购物车(含条目)
	FindByID(ctx context.Context, id uint) (*Cart, error)

	// FindOpenByCustomer 查找顾客当前打开的购物车(含条目),没有返回ErrCartNotFound
	FindOpenByCustomer(ctx context.Context, customerID uint) (*Cart, error)

	// LockByID 以FOR UPDATE锁定并返回购物车行(不含条目),必须在事务内调用
	LockByID(ctx context.Context, id uint) (*Cart, error)

	// FindItem 查找购物车中指定披萨的条目,没有返回ErrLineItemNotFound
	FindItem(ctx context.Context, cartID, pizzaID uint) (*LineItem, error)

	// CreateItem 创建条目,唯一索引冲突返回ErrDuplicateLineItem
	CreateItem(ctx context.Context, item *LineItem) error

	// UpdateItem 更新条目的数量与小计
	UpdateItem(ctx context.Context, item *LineItem) error

	// DeleteItem 删除条目
	DeleteItem(ctx context.Context, itemID uint) error

	// RecomputeTotals 以SUM语句重算并持久化聚合值,返回刷新后的购物车(含条目)
	// 必须作为每个变更操作在事务内的最后一步
	RecomputeTotals(ctx context.Context, cartID uint) (*Cart, error)

	// Close 结单:置InOrder并释放打开位(open_key置NULL)
	// 购物车已结单时返回ErrCartClosed,保证同一购物车只能结单一次
	Close(ctx context.Context, cartID uint) error
}

package cart

import (
	"context"

	"github.com/xiebiao/pizzeria/internal/domain/cart"
	"github.com/xiebiao/pizzeria/internal/domain/catalog"
)

// GetCartUseCase 查询购物车用例
// 顾客任何时刻都有购物车可看:没有打开的购物车就创建一个空的
type GetCartUseCase struct {
	cartRepo    cart.Repository
	catalogRepo catalog.Repository
}

// NewGetCartUseCase 创建查询购物车用例
func NewGetCartUseCase(cartRepo cart.Repository, catalogRepo catalog.Repository) *GetCartUseCase {
	return &GetCartUseCase{cartRepo: cartRepo, catalogRepo: catalogRepo}
}

// Execute 执行查询
// 并发首次访问由存储层的唯一约束保证只产生一个购物车
func (uc *GetCartUseCase) Execute(ctx context.Context, customerID uint) (*CartView, error) {
	c, err := uc.cartRepo.FindOrCreateOpen(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return buildCartView(ctx, c, uc.catalogRepo), nil
}

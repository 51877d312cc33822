package cart

import (
	"context"

	"github.com/xiebiao/pizzeria/internal/domain/cart"
	"github.com/xiebiao/pizzeria/internal/domain/catalog"
	"github.com/xiebiao/pizzeria/pkg/metrics"
)

// RemoveItemUseCase 移除条目用例
type RemoveItemUseCase struct {
	cartRepo    cart.Repository
	catalogRepo catalog.Repository
	txManager   TxManager
}

// NewRemoveItemUseCase 创建移除条目用例
func NewRemoveItemUseCase(
	cartRepo cart.Repository,
	catalogRepo catalog.Repository,
	txManager TxManager,
) *RemoveItemUseCase {
	return &RemoveItemUseCase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
	}
}

// RemoveItemRequest 移除条目请求
type RemoveItemRequest struct {
	CustomerID uint
	PizzaID    uint
}

// Execute 执行移除
func (uc *RemoveItemUseCase) Execute(ctx context.Context, req RemoveItemRequest) (*CartView, error) {
	open, err := uc.cartRepo.FindOpenByCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	var result *cart.Cart
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		locked, err := uc.cartRepo.LockByID(txCtx, open.ID)
		if err != nil {
			return err
		}
		if !locked.IsOpen() {
			return cart.ErrCartClosed
		}

		item, err := uc.cartRepo.FindItem(txCtx, locked.ID, req.PizzaID)
		if err != nil {
			return err
		}
		if err := uc.cartRepo.DeleteItem(txCtx, item.ID); err != nil {
			return err
		}

		result, err = uc.cartRepo.RecomputeTotals(txCtx, locked.ID)
		return err
	})
	if err != nil {
		metrics.CartMutationsTotal.WithLabelValues("remove", "error").Inc()
		return nil, err
	}

	metrics.CartMutationsTotal.WithLabelValues("remove", "ok").Inc()
	return buildCartView(ctx, result, uc.catalogRepo), nil
}

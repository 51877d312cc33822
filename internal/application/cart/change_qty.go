package cart

import (
	"context"

	"github.com/xiebiao/pizzeria/internal/domain/cart"
	"github.com/xiebiao/pizzeria/internal/domain/catalog"
	"github.com/xiebiao/pizzeria/pkg/metrics"
)

// ChangeQtyUseCase 修改条目数量用例
// 数量必须>=1,清零请走移除接口;小计按目录现价重算
type ChangeQtyUseCase struct {
	cartRepo    cart.Repository
	catalogRepo catalog.Repository
	txManager   TxManager
}

// NewChangeQtyUseCase 创建修改数量用例
func NewChangeQtyUseCase(
	cartRepo cart.Repository,
	catalogRepo catalog.Repository,
	txManager TxManager,
) *ChangeQtyUseCase {
	return &ChangeQtyUseCase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
	}
}

// ChangeQtyRequest 修改数量请求
type ChangeQtyRequest struct {
	CustomerID uint
	PizzaID    uint
	Qty        int
}

// Execute 执行修改
func (uc *ChangeQtyUseCase) Execute(ctx context.Context, req ChangeQtyRequest) (*CartView, error) {
	// 进事务前先拦掉明显非法的数量
	if req.Qty < 1 {
		return nil, cart.ErrInvalidQuantity
	}

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

		pizza, err := uc.catalogRepo.FindPizzaByID(txCtx, req.PizzaID)
		if err != nil {
			return err
		}

		if err := item.SetQty(req.Qty, pizza.Price); err != nil {
			return err
		}
		if err := uc.cartRepo.UpdateItem(txCtx, item); err != nil {
			return err
		}

		result, err = uc.cartRepo.RecomputeTotals(txCtx, locked.ID)
		return err
	})
	if err != nil {
		metrics.CartMutationsTotal.WithLabelValues("change_qty", "error").Inc()
		return nil, err
	}

	metrics.CartMutationsTotal.WithLabelValues("change_qty", "ok").Inc()
	return buildCartView(ctx, result, uc.catalogRepo), nil
}

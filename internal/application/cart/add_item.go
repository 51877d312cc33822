package cart

import (
	"context"
	"errors"

	"github.com/xiebiao/pizzeria/internal/domain/cart"
	"github.com/xiebiao/pizzeria/internal/domain/catalog"
	"github.com/xiebiao/pizzeria/pkg/metrics"
)

// AddItemUseCase 加购用例
// 设计要点:
// 1. 标准变更路径:事务内锁购物车行 → 改条目 → 重算聚合值
// 2. 同一披萨重复加购合并为数量+1,不产生第二条记录
//    (条目唯一索引兜底:并发首购的落败方转为数量合并)
// 3. 小计始终按目录现价重算
type AddItemUseCase struct {
	cartRepo    cart.Repository
	catalogRepo catalog.Repository
	txManager   TxManager
}

// NewAddItemUseCase 创建加购用例
func NewAddItemUseCase(
	cartRepo cart.Repository,
	catalogRepo catalog.Repository,
	txManager TxManager,
) *AddItemUseCase {
	return &AddItemUseCase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
	}
}

// AddItemRequest 加购请求
type AddItemRequest struct {
	CustomerID uint
	PizzaSlug  string
}

// Execute 执行加购
func (uc *AddItemUseCase) Execute(ctx context.Context, req AddItemRequest) (*CartView, error) {
	// 定位打开的购物车(没有则创建)
	open, err := uc.cartRepo.FindOrCreateOpen(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	var result *cart.Cart
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 锁定购物车行,串行化同一购物车上的并发变更
		locked, err := uc.cartRepo.LockByID(txCtx, open.ID)
		if err != nil {
			return err
		}
		if !locked.IsOpen() {
			return cart.ErrCartClosed
		}

		// 2. 按目录现价取披萨,下架/售罄不允许加购
		pizza, err := uc.catalogRepo.FindPizzaBySlug(txCtx, req.PizzaSlug)
		if err != nil {
			return err
		}
		if !pizza.InStock {
			return catalog.ErrPizzaUnavailable
		}

		// 3. 已有条目则数量+1,否则创建数量为1的新条目
		existing, err := uc.cartRepo.FindItem(txCtx, locked.ID, pizza.ID)
		switch {
		case err == nil:
			if err := existing.SetQty(existing.Qty+1, pizza.Price); err != nil {
				return err
			}
			if err := uc.cartRepo.UpdateItem(txCtx, existing); err != nil {
				return err
			}
		case errors.Is(err, cart.ErrLineItemNotFound):
			item := cart.NewLineItem(req.CustomerID, locked.ID, pizza.ID, pizza.Price)
			if err := uc.cartRepo.CreateItem(txCtx, item); err != nil {
				if !errors.Is(err, cart.ErrDuplicateLineItem) {
					return err
				}
				// 并发首购落败,转为合并数量
				existing, err := uc.cartRepo.FindItem(txCtx, locked.ID, pizza.ID)
				if err != nil {
					return err
				}
				if err := existing.SetQty(existing.Qty+1, pizza.Price); err != nil {
					return err
				}
				if err := uc.cartRepo.UpdateItem(txCtx, existing); err != nil {
					return err
				}
			}
		default:
			return err
		}

		// 4. 重算聚合值,保持与条目一致
		result, err = uc.cartRepo.RecomputeTotals(txCtx, locked.ID)
		return err
	})
	if err != nil {
		metrics.CartMutationsTotal.WithLabelValues("add", "error").Inc()
		return nil, err
	}

	metrics.CartMutationsTotal.WithLabelValues("add", "ok").Inc()
	return buildCartView(ctx, result, uc.catalogRepo), nil
}

package order

import (
	"context"

	"github.com/xiebiao/pizzeria/internal/domain/order"
)

// UpdateStatusUseCase 订单状态流转用例(后厨/店员侧)
// 状态机规则由实体守卫:只许向前(允许跳级),已完成为终态
type UpdateStatusUseCase struct {
	orderRepo order.Repository
	txManager TxManager
}

// NewUpdateStatusUseCase 创建状态流转用例
func NewUpdateStatusUseCase(orderRepo order.Repository, txManager TxManager) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{orderRepo: orderRepo, txManager: txManager}
}

// UpdateStatusRequest 状态流转请求
type UpdateStatusRequest struct {
	OrderNo string
	Status  order.Status
}

// Execute 执行流转
// 事务内读改写,避免两个店员并发流转时写丢失
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, req UpdateStatusRequest) (*OrderView, error) {
	var o *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		var err error
		o, err = uc.orderRepo.FindByOrderNo(txCtx, req.OrderNo)
		if err != nil {
			return err
		}

		if err := o.TransitionTo(req.Status); err != nil {
			return err
		}
		return uc.orderRepo.UpdateStatus(txCtx, o)
	})
	if err != nil {
		return nil, err
	}

	return toOrderView(o), nil
}

package order

import (
	"context"
	"log"
	"time"

	"github.com/xiebiao/pizzeria/internal/domain/cart"
	"github.com/xiebiao/pizzeria/internal/domain/order"
	"github.com/xiebiao/pizzeria/pkg/metrics"
)

// TxManager 事务管理器接口
// 由infrastructure/persistence/mysql.TxManager实现,
// 定义在消费方便于单元测试注入假实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher 订单事件发布接口(RabbitMQ实现,可关闭)
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// CheckoutUseCase 结算用例
// 整个子系统最核心的用例,把打开的购物车原子地转为订单
//
// 流程:
// 1. 校验结算表单(顺序固定:电话→姓名→送达时间),失败时购物车原样保留
// 2. 事务内:锁购物车 → 空车检查 → 创建订单 → 购物车结单
//    事务保证"订单创建"与"购物车冻结"要么同时发生要么都不发生
// 3. 提交后发布order.created事件(尽力而为,失败只记日志)
//
// 并发双重结算:Close带WHERE in_order=0守卫,落败方整个事务回滚,
// 不会出现两个订单引用同一购物车(orders.cart_id唯一索引二次兜底)
type CheckoutUseCase struct {
	cartRepo  cart.Repository
	orderRepo order.Repository
	txManager TxManager
	publisher EventPublisher // 可为nil(MQ未启用)
	now       func() time.Time
}

// NewCheckoutUseCase 创建结算用例
func NewCheckoutUseCase(
	cartRepo cart.Repository,
	orderRepo order.Repository,
	txManager TxManager,
	publisher EventPublisher,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		txManager: txManager,
		publisher: publisher,
		now:       time.Now,
	}
}

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	CustomerID    uint
	FirstName     string
	LastName      string
	Phone         string
	Address       string
	Delivery      order.DeliveryMode
	Comment       string
	OrderDateTime time.Time
}

// CheckoutResponse 结算响应
type CheckoutResponse struct {
	OrderID       uint   `json:"order_id"`
	OrderNo       string `json:"order_no"`
	Status        int    `json:"status"`
	StatusText    string `json:"status_text"`
	TotalQty      int    `json:"total_qty"`
	TotalPrice    int64  `json:"total_price"` // 分
	Delivery      string `json:"delivery"`
	OrderDateTime string `json:"order_date_time"`
	CreatedAt     string `json:"created_at"`
}

// OrderCreatedEvent 下单事件(路由键order.created)
type OrderCreatedEvent struct {
	OrderNo    string `json:"order_no"`
	CustomerID uint   `json:"customer_id"`
	TotalPrice int64  `json:"total_price"`
	Delivery   string `json:"delivery"`
	CreatedAt  string `json:"created_at"`
}

// Execute 执行结算
func (uc *CheckoutUseCase) Execute(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	details := order.Details{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Address:       req.Address,
		Delivery:      req.Delivery,
		Comment:       req.Comment,
		OrderDateTime: req.OrderDateTime,
	}

	// 1. 表单校验,任何一项失败购物车保持打开且内容不变
	if err := details.Validate(uc.now()); err != nil {
		metrics.OrdersFailedTotal.Inc()
		return nil, err
	}

	open, err := uc.cartRepo.FindOpenByCustomer(ctx, req.CustomerID)
	if err != nil {
		metrics.OrdersFailedTotal.Inc()
		return nil, err
	}

	// 2. 事务:订单创建与购物车结单同生共死
	var (
		created *order.Order
		locked  *cart.Cart
	)
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.cartRepo.LockByID(txCtx, open.ID); err != nil {
			return err
		}

		// 锁后重读,拿到并发变更尘埃落定后的条目与聚合值
		locked, err = uc.cartRepo.FindByID(txCtx, open.ID)
		if err != nil {
			return err
		}
		if !locked.IsOpen() {
			return cart.ErrCartClosed
		}
		if locked.IsEmpty() {
			return order.ErrEmptyCart
		}

		created = order.NewOrder(order.GenerateOrderNo(), req.CustomerID, locked.ID, details)
		if err := uc.orderRepo.Create(txCtx, created); err != nil {
			return err
		}

		// 结单:冻结购物车并释放打开位,下次访问购物车接口会新建空车
		return uc.cartRepo.Close(txCtx, locked.ID)
	})
	if err != nil {
		metrics.OrdersFailedTotal.Inc()
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()

	// 3. 提交后发布事件,失败不影响下单结果
	if uc.publisher != nil {
		event := OrderCreatedEvent{
			OrderNo:    created.OrderNo,
			CustomerID: created.CustomerID,
			TotalPrice: locked.TotalPrice,
			Delivery:   string(created.Delivery),
			CreatedAt:  created.CreatedAt.Format(time.RFC3339),
		}
		if err := uc.publisher.Publish(ctx, "order.created", event); err != nil {
			log.Printf("发布order.created事件失败: %v", err)
		}
	}

	return &CheckoutResponse{
		OrderID:       created.ID,
		OrderNo:       created.OrderNo,
		Status:        int(created.Status),
		StatusText:    created.Status.String(),
		TotalQty:      locked.TotalQty,
		TotalPrice:    locked.TotalPrice,
		Delivery:      string(created.Delivery),
		OrderDateTime: created.OrderDateTime.Format(time.RFC3339),
		CreatedAt:     created.CreatedAt.Format(time.RFC3339),
	}, nil
}

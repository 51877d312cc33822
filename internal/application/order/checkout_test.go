package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/pizzeria/internal/domain/cart"
	"github.com/xiebiao/pizzeria/internal/domain/order"
	apperrors "github.com/xiebiao/pizzeria/pkg/errors"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// openCart 一个有两个条目的打开购物车
func openCart() *cart.Cart {
	return &cart.Cart{
		ID:         10,
		CustomerID: 1,
		Items: []cart.LineItem{
			{ID: 1, CartID: 10, PizzaID: 1, Qty: 2, FinalPrice: 2500},
			{ID: 2, CartID: 10, PizzaID: 2, Qty: 1, FinalPrice: 1500},
		},
		TotalQty:   3,
		TotalPrice: 4000,
	}
}

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		CustomerID:    1,
		FirstName:     "Ivan",
		LastName:      "Petrov",
		Phone:         "380501234567",
		Address:       "Khreshchatyk 1",
		Delivery:      order.DeliveryModeDelivery,
		OrderDateTime: testNow.Add(2 * time.Hour),
	}
}

func newCheckout(cartRepo *fakeCartRepo, orderRepo *fakeOrderRepo, pub EventPublisher) *CheckoutUseCase {
	uc := NewCheckoutUseCase(cartRepo, orderRepo, &fakeTxManager{}, pub)
	uc.now = func() time.Time { return testNow }
	return uc
}

// TestCheckout 测试结算
func TestCheckout(t *testing.T) {
	t.Run("成功结算创建订单并冻结购物车", func(t *testing.T) {
		cartRepo := newFakeCartRepo(openCart())
		orderRepo := newFakeOrderRepo()
		pub := &fakePublisher{}
		uc := newCheckout(cartRepo, orderRepo, pub)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.OrderNo)
		assert.Equal(t, int(order.StatusNew), resp.Status, "新订单初始状态")
		assert.Equal(t, 3, resp.TotalQty)
		assert.Equal(t, int64(4000), resp.TotalPrice, "订单金额取自购物车聚合值")

		// 购物车已结单冻结
		frozen, err := cartRepo.FindByID(context.Background(), 10)
		require.NoError(t, err)
		assert.True(t, frozen.InOrder)
		assert.Len(t, frozen.Items, 2, "明细快照原样保留")

		// 订单落库且引用购物车
		created, err := orderRepo.FindByOrderNo(context.Background(), resp.OrderNo)
		require.NoError(t, err)
		assert.Equal(t, uint(10), created.CartID)
		assert.Equal(t, "380501234567", created.Phone)

		// 发布了下单事件
		assert.Equal(t, []string{"order.created"}, pub.events)
	})

	t.Run("结单后顾客没有打开的购物车", func(t *testing.T) {
		cartRepo := newFakeCartRepo(openCart())
		uc := newCheckout(cartRepo, newFakeOrderRepo(), nil)

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		_, err = cartRepo.FindOpenByCustomer(context.Background(), 1)
		assert.ErrorIs(t, err, cart.ErrCartNotFound, "下一次访问购物车接口会新建空车")
	})

	t.Run("表单校验失败购物车原样保留", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*CheckoutRequest)
			want   error
		}{
			{"电话格式错", func(r *CheckoutRequest) { r.Phone = "12345" }, order.ErrInvalidPhone},
			{"姓名格式错", func(r *CheckoutRequest) { r.FirstName = "ivan" }, order.ErrInvalidName},
			{"提前量不足", func(r *CheckoutRequest) { r.OrderDateTime = testNow.Add(30 * time.Minute) }, order.ErrLeadTimeViolation},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cartRepo := newFakeCartRepo(openCart())
				orderRepo := newFakeOrderRepo()
				uc := newCheckout(cartRepo, orderRepo, nil)

				req := validRequest()
				tc.mutate(&req)

				_, err := uc.Execute(context.Background(), req)
				assert.ErrorIs(t, err, tc.want)

				// 购物车仍然打开且内容不变
				c, err := cartRepo.FindOpenByCustomer(context.Background(), 1)
				require.NoError(t, err)
				assert.False(t, c.InOrder)
				assert.Equal(t, 3, c.TotalQty)
				assert.Empty(t, orderRepo.orders, "不应产生任何订单")
			})
		}
	})

	t.Run("空购物车不能结算", func(t *testing.T) {
		empty := &cart.Cart{ID: 10, CustomerID: 1}
		cartRepo := newFakeCartRepo(empty)
		orderRepo := newFakeOrderRepo()
		uc := newCheckout(cartRepo, orderRepo, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, order.ErrEmptyCart)

		c, err := cartRepo.FindOpenByCustomer(context.Background(), 1)
		require.NoError(t, err)
		assert.False(t, c.InOrder, "空车结算失败后购物车保持打开")
	})

	t.Run("没有购物车不能结算", func(t *testing.T) {
		uc := newCheckout(newFakeCartRepo(), newFakeOrderRepo(), nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, cart.ErrCartNotFound)
	})

	t.Run("订单落库失败购物车不结单", func(t *testing.T) {
		cartRepo := newFakeCartRepo(openCart())
		orderRepo := newFakeOrderRepo()
		orderRepo.failCreate = apperrors.ErrDatabaseError
		uc := newCheckout(cartRepo, orderRepo, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.Error(t, err)

		c, err := cartRepo.FindByID(context.Background(), 10)
		require.NoError(t, err)
		assert.False(t, c.InOrder, "订单与结单必须同生共死")
	})

	t.Run("重复结算被拒绝", func(t *testing.T) {
		cartRepo := newFakeCartRepo(openCart())
		uc := newCheckout(cartRepo, newFakeOrderRepo(), nil)

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, cart.ErrCartNotFound, "打开位已释放,没有可结算的购物车")
	})
}

// TestGetOrder 测试订单详情
func TestGetOrder(t *testing.T) {
	cartRepo := newFakeCartRepo(openCart())
	orderRepo := newFakeOrderRepo()
	checkout := newCheckout(cartRepo, orderRepo, nil)

	resp, err := checkout.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	uc := NewGetOrderUseCase(orderRepo, cartRepo)

	t.Run("本人查询返回明细快照", func(t *testing.T) {
		view, err := uc.Execute(context.Background(), 1, resp.OrderNo)
		require.NoError(t, err)

		assert.Equal(t, resp.OrderNo, view.OrderNo)
		assert.Equal(t, 3, view.TotalQty)
		assert.Equal(t, int64(4000), view.TotalPrice)
		assert.Len(t, view.Items, 2)
	})

	t.Run("他人订单按不存在处理", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), 99, resp.OrderNo)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("不存在的订单号", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), 1, "PZA0000000000000000")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

// TestUpdateStatus 测试状态流转用例
func TestUpdateStatus(t *testing.T) {
	cartRepo := newFakeCartRepo(openCart())
	orderRepo := newFakeOrderRepo()
	checkout := newCheckout(cartRepo, orderRepo, nil)

	resp, err := checkout.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	uc := NewUpdateStatusUseCase(orderRepo, &fakeTxManager{})

	t.Run("向前流转并持久化", func(t *testing.T) {
		view, err := uc.Execute(context.Background(), UpdateStatusRequest{OrderNo: resp.OrderNo, Status: order.StatusInProgress})
		require.NoError(t, err)
		assert.Equal(t, int(order.StatusInProgress), view.Status)

		stored, err := orderRepo.FindByOrderNo(context.Background(), resp.OrderNo)
		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, stored.Status)
	})

	t.Run("回退被拒绝", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateStatusRequest{OrderNo: resp.OrderNo, Status: order.StatusNew})
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

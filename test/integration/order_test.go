package integration

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 订单模块集成测试
// 重点验证结算的原子性边界:校验失败购物车原样保留,成功后购物车冻结

// TestOrderCheckout 测试结算下单
func TestOrderCheckout(t *testing.T) {
	RequireServer(t)

	pizza := FindInStockPizza(t)

	t.Run("正常结算", func(t *testing.T) {
		_, token := RegisterTestUser(t, "checkout_user")
		AddToCart(t, token, pizza.Slug)
		cart := AddToCart(t, token, pizza.Slug)

		resp := PostJSON(t, BaseURL+"/orders/checkout", CheckoutForm(nil), token)
		require.Equal(t, 0, resp.Code, "结算失败: %s", resp.Message)

		var data CheckoutData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析结算响应失败")

		assert.NotEmpty(t, data.OrderNo)
		assert.Equal(t, 1, data.Status, "新订单应处于已接收状态")
		assert.Equal(t, cart.TotalQty, data.TotalQty, "订单数量应与结算时的购物车一致")
		assert.Equal(t, cart.TotalPrice, data.TotalPrice, "订单金额应与结算时的购物车一致")

		// 结算后再取购物车,应得到一个新的空购物车
		fresh := GetCart(t, token)
		assert.Empty(t, fresh.Items, "结算后应开启新的空购物车")
		assert.NotEqual(t, cart.ID, fresh.ID)
	})

	t.Run("空购物车结算失败", func(t *testing.T) {
		_, token := RegisterTestUser(t, "empty_cart_user")
		GetCart(t, token)

		resp := PostJSON(t, BaseURL+"/orders/checkout", CheckoutForm(nil), token)
		assert.NotEqual(t, 0, resp.Code, "空购物车应该无法结算")
	})

	t.Run("表单校验失败购物车原样保留", func(t *testing.T) {
		_, token := RegisterTestUser(t, "invalid_form_user")
		before := AddToCart(t, token, pizza.Slug)

		// 手机号不合法
		resp := PostJSON(t, BaseURL+"/orders/checkout",
			CheckoutForm(map[string]interface{}{"phone": "123456789012"}), token)
		assert.NotEqual(t, 0, resp.Code, "手机号不合法应该结算失败")

		// 取餐时间不足1小时
		resp = PostJSON(t, BaseURL+"/orders/checkout",
			CheckoutForm(map[string]interface{}{
				"order_date_time": time.Now().Add(30 * time.Minute).Format(time.RFC3339),
			}), token)
		assert.NotEqual(t, 0, resp.Code, "提前量不足1小时应该结算失败")

		after := GetCart(t, token)
		assert.Equal(t, before.ID, after.ID, "校验失败不应关闭购物车")
		assert.Equal(t, before.TotalQty, after.TotalQty)
		assert.Equal(t, before.TotalPrice, after.TotalPrice)
	})
}

// TestOrderQuery 测试订单查询与归属校验
func TestOrderQuery(t *testing.T) {
	RequireServer(t)

	pizza := FindInStockPizza(t)
	_, token := RegisterTestUser(t, "order_query_user")
	AddToCart(t, token, pizza.Slug)

	checkoutResp := PostJSON(t, BaseURL+"/orders/checkout", CheckoutForm(nil), token)
	require.Equal(t, 0, checkoutResp.Code, "结算失败: %s", checkoutResp.Message)

	var created CheckoutData
	require.NoError(t, json.Unmarshal(checkoutResp.Data, &created))

	t.Run("订单详情包含冻结的购物车快照", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/orders/"+created.OrderNo, token)
		require.Equal(t, 0, resp.Code, "获取订单详情失败: %s", resp.Message)

		var data OrderData
		require.NoError(t, json.Unmarshal(resp.Data, &data))

		assert.Equal(t, created.OrderNo, data.OrderNo)
		assert.Equal(t, created.TotalPrice, data.TotalPrice)
		require.Len(t, data.Items, 1)
		assert.Equal(t, pizza.ID, data.Items[0].PizzaID)
	})

	t.Run("订单列表包含新订单", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/orders?page=1&page_size=10", token)
		require.Equal(t, 0, resp.Code, "获取订单列表失败: %s", resp.Message)

		var page struct {
			List []OrderData `json:"list"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &page))
		require.NotEmpty(t, page.List)
		assert.Equal(t, created.OrderNo, page.List[0].OrderNo, "列表应按创建时间倒序")
	})

	t.Run("他人订单不可见", func(t *testing.T) {
		_, otherToken := RegisterTestUser(t, "order_other_user")

		resp := GetJSON(t, BaseURL+"/orders/"+created.OrderNo, otherToken)
		assert.NotEqual(t, 0, resp.Code, "他人订单应返回未找到而非越权数据")
	})
}

// TestOrderStatusFlow 测试订单状态流转
func TestOrderStatusFlow(t *testing.T) {
	RequireServer(t)

	pizza := FindInStockPizza(t)
	_, token := RegisterTestUser(t, "order_status_user")
	AddToCart(t, token, pizza.Slug)

	checkoutResp := PostJSON(t, BaseURL+"/orders/checkout", CheckoutForm(nil), token)
	require.Equal(t, 0, checkoutResp.Code, "结算失败: %s", checkoutResp.Message)

	var created CheckoutData
	require.NoError(t, json.Unmarshal(checkoutResp.Data, &created))
	statusURL := BaseURL + "/orders/" + created.OrderNo + "/status"

	t.Run("顺序推进", func(t *testing.T) {
		resp := PutJSON(t, statusURL, map[string]int{"status": 2}, token)
		assert.Equal(t, 0, resp.Code, "推进到制作中失败: %s", resp.Message)
	})

	t.Run("回退被拒绝", func(t *testing.T) {
		resp := PutJSON(t, statusURL, map[string]int{"status": 1}, token)
		assert.NotEqual(t, 0, resp.Code, "状态不允许回退")
	})

	t.Run("跳级推进到完成", func(t *testing.T) {
		resp := PutJSON(t, statusURL, map[string]int{"status": 4}, token)
		assert.Equal(t, 0, resp.Code, "跳级推进失败: %s", resp.Message)

		resp = PutJSON(t, statusURL, map[string]int{"status": 4}, token)
		assert.NotEqual(t, 0, resp.Code, "完成是终态,不允许再流转")
	})
}

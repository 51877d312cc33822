package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLineItem_SetQty 测试条目数量修改与小计重算
func TestLineItem_SetQty(t *testing.T) {
	t.Run("小计等于现价乘数量", func(t *testing.T) {
		item := NewLineItem(1, 10, 100, 1250) // 12.50元

		err := item.SetQty(3, 1250)
		assert.NoError(t, err)
		assert.Equal(t, 3, item.Qty)
		assert.Equal(t, int64(3750), item.FinalPrice, "小计应该是12.50*3=37.50元")
	})

	t.Run("目录改价后按现价重算", func(t *testing.T) {
		item := NewLineItem(1, 10, 100, 1250)
		assert.Equal(t, int64(1250), item.FinalPrice)

		// 披萨涨价到15.00元,再改数量时小计跟随现价
		err := item.SetQty(2, 1500)
		assert.NoError(t, err)
		assert.Equal(t, int64(3000), item.FinalPrice)
	})

	t.Run("数量小于1被拒绝", func(t *testing.T) {
		item := NewLineItem(1, 10, 100, 1250)

		err := item.SetQty(0, 1250)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		err = item.SetQty(-1, 1250)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		// 失败后原值不变
		assert.Equal(t, 1, item.Qty)
		assert.Equal(t, int64(1250), item.FinalPrice)
	})
}

// TestNewLineItem 测试新条目的初始状态
func TestNewLineItem(t *testing.T) {
	item := NewLineItem(7, 42, 9, 990)

	assert.Equal(t, uint(7), item.CustomerID)
	assert.Equal(t, uint(42), item.CartID)
	assert.Equal(t, uint(9), item.PizzaID)
	assert.Equal(t, 1, item.Qty, "新条目数量应该是1")
	assert.Equal(t, int64(990), item.FinalPrice, "新条目小计应该等于披萨现价")
}

// TestCart_Recompute 测试聚合值重算
func TestCart_Recompute(t *testing.T) {
	t.Run("聚合值等于条目之和", func(t *testing.T) {
		c := &Cart{
			ID:         1,
			CustomerID: 1,
			Items: []LineItem{
				{PizzaID: 1, Qty: 2, FinalPrice: 2500},
				{PizzaID: 2, Qty: 1, FinalPrice: 990},
				{PizzaID: 3, Qty: 3, FinalPrice: 4500},
			},
		}

		c.Recompute()

		assert.Equal(t, 6, c.TotalQty)
		assert.Equal(t, int64(7990), c.TotalPrice)
	})

	t.Run("空购物车聚合值为零", func(t *testing.T) {
		c := &Cart{ID: 1, TotalQty: 5, TotalPrice: 1000}

		c.Recompute()

		assert.Equal(t, 0, c.TotalQty)
		assert.Equal(t, int64(0), c.TotalPrice)
		assert.True(t, c.IsEmpty())
	})
}

// TestCart_IsOpen 测试结单状态判断
func TestCart_IsOpen(t *testing.T) {
	c := &Cart{ID: 1}
	assert.True(t, c.IsOpen())

	c.InOrder = true
	assert.False(t, c.IsOpen(), "已结单的购物车不允许变更")
}

// TestCart_FindItemByPizza 测试聚合内条目查找
func TestCart_FindItemByPizza(t *testing.T) {
	c := &Cart{
		Items: []LineItem{
			{ID: 1, PizzaID: 100, Qty: 2},
			{ID: 2, PizzaID: 200, Qty: 1},
		},
	}

	item := c.FindItemByPizza(200)
	assert.NotNil(t, item)
	assert.Equal(t, uint(2), item.ID)

	assert.Nil(t, c.FindItemByPizza(999))
}

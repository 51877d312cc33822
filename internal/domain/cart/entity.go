package cart

import (
	"time"
)

// LineItem 购物车条目
// 设计说明:
// 1. 一个(顾客,购物车,披萨)组合至多一条记录,由数据库唯一索引保证
// 2. FinalPrice是派生缓存(= 披萨现价 × 数量),不是价格的事实来源
// 3. 数量每次变更都按目录现价重算,结单前条目价格跟随目录浮动
type LineItem struct {
	ID         uint
	CustomerID uint  // 所属顾客ID
	CartID     uint  // 所属购物车ID
	PizzaID    uint  // 披萨ID
	Qty        int   // 数量(>=1)
	FinalPrice int64 // 小计(分) = 披萨现价 × Qty
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewLineItem 创建新条目(工厂方法)
// 初始数量为1,小计等于披萨现价
func NewLineItem(customerID, cartID, pizzaID uint, unitPrice int64) *LineItem {
	now := time.Now()
	return &LineItem{
		CustomerID: customerID,
		CartID:     cartID,
		PizzaID:    pizzaID,
		Qty:        1,
		FinalPrice: unitPrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SetQty 修改数量并按目录现价重算小计
// 不变量:调用返回后 FinalPrice == unitPrice * Qty
func (li *LineItem) SetQty(qty int, unitPrice int64) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	li.Qty = qty
	li.FinalPrice = unitPrice * int64(qty)
	li.UpdatedAt = time.Now()
	return nil
}

// Cart 购物车实体(聚合根)
// 设计说明:
// 1. TotalQty/TotalPrice是存储的聚合值,读侧(角标、侧边栏)零成本
// 2. 不变量:InOrder为false期间,每次变更操作返回后
//    TotalQty == Σ条目Qty 且 TotalPrice == Σ条目FinalPrice
// 3. InOrder置true后购物车冻结,作为订单的明细快照保留
// 4. ForAnonUser为匿名购物车预留,当前版本未实现
type Cart struct {
	ID          uint
	CustomerID  uint
	Items       []LineItem
	TotalQty    int   // 条目数量合计
	TotalPrice  int64 // 金额合计(分)
	InOrder     bool  // true表示已转为订单,购物车只读
	ForAnonUser bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOpen 购物车是否可变更
func (c *Cart) IsOpen() bool {
	return !c.InOrder
}

// IsEmpty 购物车是否没有任何条目
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Recompute 按当前条目重算聚合值
// 持久层在同一事务内以SUM语句完成同样的计算,
// 这里的内存实现供领域测试与返回值修正使用
func (c *Cart) Recompute() {
	var qty int
	var price int64
	for _, item := range c.Items {
		qty += item.Qty
		price += item.FinalPrice
	}
	c.TotalQty = qty
	c.TotalPrice = price
	c.UpdatedAt = time.Now()
}

// FindItemByPizza 在聚合内查找指定披萨的条目
func (c *Cart) FindItemByPizza(pizzaID uint) *LineItem {
	for i := range c.Items {
		if c.Items[i].PizzaID == pizzaID {
			return &c.Items[i]
		}
	}
	return nil
}

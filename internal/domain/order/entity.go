package order

import (
	"time"
)

// Status 订单状态
// 设计说明:
// 1. 使用int类型而非string(节省存储空间,便于索引)
// 2. 状态值1-4递增,流转方向与数值方向一致
type Status int

const (
	StatusNew        Status = 1 // 新订单
	StatusInProgress Status = 2 // 制作中
	StatusReady      Status = 3 // 待取/待送
	StatusCompleted  Status = 4 // 已完成
)

// String 实现Stringer接口(方便日志输出)
func (s Status) String() string {
	switch s {
	case StatusNew:
		return "新订单"
	case StatusInProgress:
		return "制作中"
	case StatusReady:
		return "待取/待送"
	case StatusCompleted:
		return "已完成"
	default:
		return "未知状态"
	}
}

// Valid 状态值是否在合法区间内
func (s Status) Valid() bool {
	return s >= StatusNew && s <= StatusCompleted
}

// DeliveryMode 配送方式
type DeliveryMode string

const (
	DeliveryModeDelivery DeliveryMode = "delivery" // 外送
	DeliveryModePickup   DeliveryMode = "pickup"   // 自取
)

// Valid 配送方式是否合法
func (d DeliveryMode) Valid() bool {
	return d == DeliveryModeDelivery || d == DeliveryModePickup
}

// Order 订单实体(聚合根)
// 设计说明:
// 1. 联系方式字段是创建时的快照,顾客之后修改资料不影响已有订单
// 2. 明细不单独建表:订单引用结单时冻结的购物车,购物车即明细快照
// 3. 创建后除状态流转外不可变;订单只能由结算用例创建
type Order struct {
	ID            uint
	OrderNo       string       // 订单号(业务主键,全局唯一)
	CustomerID    uint         // 下单顾客ID
	CartID        uint         // 来源购物车ID(已冻结)
	FirstName     string       // 收货人名(快照)
	LastName      string       // 收货人姓(快照)
	Phone         string       // 联系电话(快照)
	Address       string       // 地址(快照,自取可为空)
	Status        Status       // 订单状态
	Delivery      DeliveryMode // 配送方式
	Comment       string       // 顾客备注
	OrderDateTime time.Time    // 期望送达/自取时间
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrder 创建订单(工厂方法),初始状态为新订单
func NewOrder(orderNo string, customerID, cartID uint, d Details) *Order {
	now := time.Now()
	return &Order{
		OrderNo:       orderNo,
		CustomerID:    customerID,
		CartID:        cartID,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Phone:         d.Phone,
		Address:       d.Address,
		Status:        StatusNew,
		Delivery:      d.Delivery,
		Comment:       d.Comment,
		OrderDateTime: d.OrderDateTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CanTransitionTo 检查是否可以转换到目标状态
// 状态机规则:严格单向,只许向前(允许跳级),已完成为终态
func (o *Order) CanTransitionTo(target Status) bool {
	if !target.Valid() {
		return false
	}
	if o.Status == StatusCompleted {
		return false
	}
	return target > o.Status
}

// TransitionTo 状态转换,非法流转返回ErrInvalidTransition
func (o *Order) TransitionTo(target Status) error {
	if !o.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy 检查订单是否属于指定顾客(防止越权访问他人订单)
func (o *Order) IsOwnedBy(customerID uint) bool {
	return o.CustomerID == customerID
}

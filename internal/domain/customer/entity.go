package customer

import (
	"time"
)

// Customer 顾客实体(聚合根)
// 设计说明:
// 1. 与用户身份(User)一对一:User负责登录凭证,Customer负责下单所需的联系方式
// 2. Phone全局唯一,由数据库唯一索引保证
// 3. 订单历史不内嵌在实体上:orders表以customer_id关联,按需查询
type Customer struct {
	ID        uint
	UserID    uint   // 关联的用户身份ID(唯一)
	Phone     string // 电话号码(唯一)
	Address   string // 默认收货地址
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer 创建顾客(工厂方法),注册时调用一次
func NewCustomer(userID uint, phone, address string) *Customer {
	now := time.Now()
	return &Customer{
		UserID:    userID,
		Phone:     phone,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

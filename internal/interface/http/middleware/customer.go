package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/pizzeria/internal/domain/customer"
	"github.com/xiebiao/pizzeria/pkg/response"
)

// CustomerMiddleware 顾客档案解析中间件
// 购物车与订单接口按顾客ID工作,登录态里只有用户ID,
// 这里做一次user_id→customer_id的解析并注入Context
// 必须挂在RequireAuth之后
type CustomerMiddleware struct {
	customerRepo customer.Repository
}

// NewCustomerMiddleware 创建顾客解析中间件
func NewCustomerMiddleware(customerRepo customer.Repository) *CustomerMiddleware {
	return &CustomerMiddleware{customerRepo: customerRepo}
}

// ResolveCustomer 解析当前登录用户对应的顾客档案
func (m *CustomerMiddleware) ResolveCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == 0 {
			response.ErrorWithCode(c, 40100, "请先登录")
			c.Abort()
			return
		}

		cust, err := m.customerRepo.FindByUserID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("customer_id", cust.ID)
		c.Next()
	}
}

// GetCustomerID 从Context提取当前顾客ID
func GetCustomerID(c *gin.Context) uint {
	if v, ok := c.Get("customer_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

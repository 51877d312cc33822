package dto

import (
	"time"

	apporder "github.com/xiebiao/pizzeria/internal/application/order"
)

// CheckoutRequest 结算请求
// order_date_time为RFC3339格式,必须晚于当前时间至少1小时
type CheckoutRequest struct {
	FirstName     string    `json:"first_name" binding:"required,max=255"`
	LastName      string    `json:"last_name" binding:"required,max=255"`
	Phone         string    `json:"phone" binding:"required,len=12"`
	Address       string    `json:"address" binding:"omitempty,max=255"`
	Delivery      string    `json:"delivery" binding:"required,oneof=delivery pickup"`
	Comment       string    `json:"comment" binding:"omitempty,max=1000"`
	OrderDateTime time.Time `json:"order_date_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

// UpdateStatusRequest 状态流转请求(1新订单 2制作中 3待取/待送 4已完成)
type UpdateStatusRequest struct {
	Status int `json:"status" binding:"required,min=1,max=4"`
}

// OrderItemResponse 订单明细项响应
type OrderItemResponse struct {
	PizzaID        uint   `json:"pizza_id"`
	Qty            int    `json:"qty"`
	FinalPrice     int64  `json:"final_price"`
	FinalPriceYuan string `json:"final_price_yuan"`
}

// OrderResponse 订单响应
type OrderResponse struct {
	ID             uint                `json:"id"`
	OrderNo        string              `json:"order_no"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	Phone          string              `json:"phone"`
	Address        string              `json:"address"`
	Status         int                 `json:"status"`
	StatusText     string              `json:"status_text"`
	Delivery       string              `json:"delivery"`
	Comment        string              `json:"comment,omitempty"`
	TotalQty       int                 `json:"total_qty"`
	TotalPrice     int64               `json:"total_price"`
	TotalPriceYuan string              `json:"total_price_yuan"`
	Items          []OrderItemResponse `json:"items,omitempty"`
	OrderDateTime  string              `json:"order_date_time"`
	CreatedAt      string              `json:"created_at"`
}

// ToOrderResponse 应用层视图转HTTP响应
func ToOrderResponse(v *apporder.OrderView) *OrderResponse {
	resp := &OrderResponse{
		ID:             v.ID,
		OrderNo:        v.OrderNo,
		FirstName:      v.FirstName,
		LastName:       v.LastName,
		Phone:          v.Phone,
		Address:        v.Address,
		Status:         v.Status,
		StatusText:     v.StatusText,
		Delivery:       v.Delivery,
		Comment:        v.Comment,
		TotalQty:       v.TotalQty,
		TotalPrice:     v.TotalPrice,
		TotalPriceYuan: FormatPriceYuan(v.TotalPrice),
		OrderDateTime:  v.OrderDateTime,
		CreatedAt:      v.CreatedAt,
	}
	for _, item := range v.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			PizzaID:        item.PizzaID,
			Qty:            item.Qty,
			FinalPrice:     item.FinalPrice,
			FinalPriceYuan: FormatPriceYuan(item.FinalPrice),
		})
	}
	return resp
}

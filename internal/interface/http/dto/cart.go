package dto

import (
	appcart "github.com/xiebiao/pizzeria/internal/application/cart"
)

// AddItemRequest 加购请求,重复加购同一披萨时数量+1
type AddItemRequest struct {
	PizzaSlug string `json:"pizza_slug" binding:"required,max=255"`
}

// ChangeQtyRequest 修改数量请求,数量必须>=1(清零走移除接口)
type ChangeQtyRequest struct {
	PizzaID uint `json:"pizza_id" binding:"required,min=1"`
	Qty     int  `json:"qty" binding:"required,min=1"`
}

// RemoveItemRequest 移除条目请求
type RemoveItemRequest struct {
	PizzaID uint `json:"pizza_id" binding:"required,min=1"`
}

// CartItemResponse 购物车条目响应
type CartItemResponse struct {
	ID             uint   `json:"id"`
	PizzaID        uint   `json:"pizza_id"`
	PizzaName      string `json:"pizza_name"`
	PizzaSlug      string `json:"pizza_slug"`
	Qty            int    `json:"qty"`
	FinalPrice     int64  `json:"final_price"`
	FinalPriceYuan string `json:"final_price_yuan" example:"250.00"`
}

// CartResponse 购物车响应
type CartResponse struct {
	ID             uint               `json:"id"`
	TotalQty       int                `json:"total_qty"`
	TotalPrice     int64              `json:"total_price"`
	TotalPriceYuan string             `json:"total_price_yuan" example:"375.00"`
	InOrder        bool               `json:"in_order"`
	Items          []CartItemResponse `json:"items"`
}

// ToCartResponse 应用层视图转HTTP响应
func ToCartResponse(v *appcart.CartView) *CartResponse {
	resp := &CartResponse{
		ID:             v.ID,
		TotalQty:       v.TotalQty,
		TotalPrice:     v.TotalPrice,
		TotalPriceYuan: FormatPriceYuan(v.TotalPrice),
		InOrder:        v.InOrder,
		Items:          make([]CartItemResponse, 0, len(v.Items)),
	}
	for _, item := range v.Items {
		resp.Items = append(resp.Items, CartItemResponse{
			ID:             item.ID,
			PizzaID:        item.PizzaID,
			PizzaName:      item.PizzaName,
			PizzaSlug:      item.PizzaSlug,
			Qty:            item.Qty,
			FinalPrice:     item.FinalPrice,
			FinalPriceYuan: FormatPriceYuan(item.FinalPrice),
		})
	}
	return resp
}

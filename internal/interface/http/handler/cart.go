package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/pizzeria/internal/application/cart"
	"github.com/xiebiao/pizzeria/internal/interface/http/dto"
	"github.com/xiebiao/pizzeria/internal/interface/http/middleware"
	"github.com/xiebiao/pizzeria/pkg/response"
)

// CartHandler 购物车HTTP处理器
// 所有接口要求登录,顾客ID由CustomerMiddleware注入
type CartHandler struct {
	getCartUseCase    *appcart.GetCartUseCase
	addItemUseCase    *appcart.AddItemUseCase
	changeQtyUseCase  *appcart.ChangeQtyUseCase
	removeItemUseCase *appcart.RemoveItemUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	getCartUseCase *appcart.GetCartUseCase,
	addItemUseCase *appcart.AddItemUseCase,
	changeQtyUseCase *appcart.ChangeQtyUseCase,
	removeItemUseCase *appcart.RemoveItemUseCase,
) *CartHandler {
	return &CartHandler{
		getCartUseCase:    getCartUseCase,
		addItemUseCase:    addItemUseCase,
		changeQtyUseCase:  changeQtyUseCase,
		removeItemUseCase: removeItemUseCase,
	}
}

// GetCart 查询购物车
// @Summary      查询购物车
// @Description  返回当前打开的购物车,没有则创建一个空的
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=dto.CartResponse} "查询成功"
// @Router       /api/v1/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	result, err := h.getCartUseCase.Execute(c.Request.Context(), middleware.GetCustomerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCartResponse(result))
}

// AddItem 加购
// @Summary      加购披萨
// @Description  把披萨加入购物车,重复加购同一披萨时数量+1
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddItemRequest true "加购信息"
// @Success      200 {object} response.Response{data=dto.CartResponse} "加购成功"
// @Failure      400 {object} response.Response "披萨已下架"
// @Failure      404 {object} response.Response "披萨不存在"
// @Router       /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.addItemUseCase.Execute(c.Request.Context(), appcart.AddItemRequest{
		CustomerID: middleware.GetCustomerID(c),
		PizzaSlug:  req.PizzaSlug,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCartResponse(result))
}

// ChangeQty 修改数量
// @Summary      修改条目数量
// @Description  把购物车中某披萨的数量改为指定值,小计按现价重算
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.ChangeQtyRequest true "修改信息"
// @Success      200 {object} response.Response{data=dto.CartResponse} "修改成功"
// @Failure      400 {object} response.Response "数量不合法"
// @Failure      404 {object} response.Response "购物车中没有该披萨"
// @Router       /api/v1/cart/items [put]
func (h *CartHandler) ChangeQty(c *gin.Context) {
	var req dto.ChangeQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.changeQtyUseCase.Execute(c.Request.Context(), appcart.ChangeQtyRequest{
		CustomerID: middleware.GetCustomerID(c),
		PizzaID:    req.PizzaID,
		Qty:        req.Qty,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCartResponse(result))
}

// RemoveItem 移除条目
// @Summary      移除条目
// @Description  把某披萨整条移出购物车
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.RemoveItemRequest true "移除信息"
// @Success      200 {object} response.Response{data=dto.CartResponse} "移除成功"
// @Failure      404 {object} response.Response "购物车中没有该披萨"
// @Router       /api/v1/cart/items [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req dto.RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.removeItemUseCase.Execute(c.Request.Context(), appcart.RemoveItemRequest{
		CustomerID: middleware.GetCustomerID(c),
		PizzaID:    req.PizzaID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCartResponse(result))
}

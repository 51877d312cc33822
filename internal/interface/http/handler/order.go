package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/pizzeria/internal/application/order"
	"github.com/xiebiao/pizzeria/internal/domain/order"
	"github.com/xiebiao/pizzeria/internal/interface/http/dto"
	"github.com/xiebiao/pizzeria/internal/interface/http/middleware"
	"github.com/xiebiao/pizzeria/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	checkoutUseCase     *apporder.CheckoutUseCase
	getOrderUseCase     *apporder.GetOrderUseCase
	listOrdersUseCase   *apporder.ListOrdersUseCase
	updateStatusUseCase *apporder.UpdateStatusUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	checkoutUseCase *apporder.CheckoutUseCase,
	getOrderUseCase *apporder.GetOrderUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
	updateStatusUseCase *apporder.UpdateStatusUseCase,
) *OrderHandler {
	return &OrderHandler{
		checkoutUseCase:     checkoutUseCase,
		getOrderUseCase:     getOrderUseCase,
		listOrdersUseCase:   listOrdersUseCase,
		updateStatusUseCase: updateStatusUseCase,
	}
}

// Checkout 结算
// @Summary      结算下单
// @Description  把当前打开的购物车原子地转为订单,校验失败时购物车原样保留
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CheckoutRequest true "结算表单"
// @Success      200 {object} response.Response{data=apporder.CheckoutResponse} "下单成功"
// @Failure      400 {object} response.Response "表单校验失败或购物车为空"
// @Router       /api/v1/orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.checkoutUseCase.Execute(c.Request.Context(), apporder.CheckoutRequest{
		CustomerID:    middleware.GetCustomerID(c),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Address:       req.Address,
		Delivery:      order.DeliveryMode(req.Delivery),
		Comment:       req.Comment,
		OrderDateTime: req.OrderDateTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetOrder 订单详情
// @Summary      订单详情
// @Description  按订单号查询本人订单,明细来自结单时冻结的购物车
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        order_no path string true "订单号"
// @Success      200 {object} response.Response{data=dto.OrderResponse} "查询成功"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{order_no} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderNo := c.Param("order_no")

	result, err := h.getOrderUseCase.Execute(c.Request.Context(), middleware.GetCustomerID(c), orderNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToOrderResponse(result))
}

// ListOrders 订单历史
// @Summary      订单历史
// @Description  本人全部订单,新订单在前
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page      query int false "页码,默认1"
// @Param        page_size query int false "每页数量,默认20"
// @Success      200 {object} response.Response{data=response.PageData} "查询成功"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var query struct {
		Page     int `form:"page" binding:"omitempty,min=1"`
		PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listOrdersUseCase.Execute(c.Request.Context(), apporder.ListOrdersRequest{
		CustomerID: middleware.GetCustomerID(c),
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	orders := make([]*dto.OrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, dto.ToOrderResponse(o))
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	response.SuccessWithPage(c, orders, result.Total, page, pageSize)
}

// UpdateStatus 状态流转(后厨/店员侧)
// @Summary      订单状态流转
// @Description  推进订单状态,只许向前(允许跳级),已完成为终态
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order_no path string true "订单号"
// @Param        request body dto.UpdateStatusRequest true "目标状态"
// @Success      200 {object} response.Response{data=dto.OrderResponse} "流转成功"
// @Failure      400 {object} response.Response "非法流转"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{order_no}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderNo := c.Param("order_no")

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateStatusUseCase.Execute(c.Request.Context(), apporder.UpdateStatusRequest{
		OrderNo: orderNo,
		Status:  order.Status(req.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToOrderResponse(result))
}

package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/pizzeria/internal/domain/order"
)

// OrderRepository 订单仓储MySQL实现
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &OrderRepository{db: db}
}

// Create 创建订单
// 结算用例在事务内调用,与购物车结单同提交同回滚
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找订单
func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, err
	}
	return toOrderEntity(&model), nil
}

// FindByOrderNo 根据订单号查找订单
func (r *OrderRepository) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	var model OrderModel
	if err := getDB(ctx, r.db).Where("order_no = ?", orderNo).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, err
	}
	return toOrderEntity(&model), nil
}

// FindByCartID 查找引用指定购物车的订单
func (r *OrderRepository) FindByCartID(ctx context.Context, cartID uint) (*order.Order, error) {
	var model OrderModel
	if err := getDB(ctx, r.db).Where("cart_id = ?", cartID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, err
	}
	return toOrderEntity(&model), nil
}

// UpdateStatus 持久化状态流转
func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	return getDB(ctx, r.db).Model(&OrderModel{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"status":     int(o.Status),
			"updated_at": o.UpdatedAt,
		}).Error
}

// ListByCustomerID 查询顾客的订单历史,新订单在前
func (r *OrderRepository) ListByCustomerID(ctx context.Context, customerID uint, page, pageSize int) ([]*order.Order, int64, error) {
	db := getDB(ctx, r.db)
	query := db.Model(&OrderModel{}).Where("customer_id = ?", customerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []OrderModel
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC, id DESC").
		Offset(offset).Limit(pageSize).Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	orders := make([]*order.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toOrderEntity(&models[i]))
	}
	return orders, total, nil
}

// toOrderModel 领域实体转数据模型
func toOrderModel(o *order.Order) *OrderModel {
	return &OrderModel{
		ID:            o.ID,
		OrderNo:       o.OrderNo,
		CustomerID:    o.CustomerID,
		CartID:        o.CartID,
		FirstName:     o.FirstName,
		LastName:      o.LastName,
		Phone:         o.Phone,
		Address:       o.Address,
		Status:        int(o.Status),
		Delivery:      string(o.Delivery),
		Comment:       o.Comment,
		OrderDateTime: o.OrderDateTime,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// toOrderEntity 数据模型转领域实体
func toOrderEntity(m *OrderModel) *order.Order {
	return &order.Order{
		ID:            m.ID,
		OrderNo:       m.OrderNo,
		CustomerID:    m.CustomerID,
		CartID:        m.CartID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Phone:         m.Phone,
		Address:       m.Address,
		Status:        order.Status(m.Status),
		Delivery:      order.DeliveryMode(m.Delivery),
		Comment:       m.Comment,
		OrderDateTime: m.OrderDateTime,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

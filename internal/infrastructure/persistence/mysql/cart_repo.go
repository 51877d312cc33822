package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/pizzeria/internal/domain/cart"
)

// CartRepository 购物车仓储MySQL实现
//
// 并发设计:
// 1. "每顾客至多一个打开购物车"由carts.open_key唯一索引保证:
//    打开期间open_key==customer_id,结单后置NULL
// 2. FindOrCreateOpen先查后插,插入撞唯一索引说明并发方已创建,重查即可
// 3. 变更路径统一为:事务内LockByID(FOR UPDATE) → 改条目 → RecomputeTotals,
//    购物车行锁把同一购物车上的并发变更串行化
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &CartRepository{db: db}
}

// FindOrCreateOpen 返回顾客唯一的打开购物车,不存在则创建
func (r *CartRepository) FindOrCreateOpen(ctx context.Context, customerID uint) (*cart.Cart, error) {
	c, err := r.FindOpenByCustomer(ctx, customerID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, cart.ErrCartNotFound) {
		return nil, err
	}

	// 不存在则创建,open_key唯一索引兜住并发创建
	openKey := customerID
	model := &CartModel{
		CustomerID: customerID,
		OpenKey:    &openKey,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			// 并发方先创建成功,重查返回同一个购物车
			return r.FindOpenByCustomer(ctx, customerID)
		}
		return nil, err
	}
	return toCartEntity(model), nil
}

// FindByID 根据ID查找购物车(含条目)
func (r *CartRepository) FindByID(ctx context.Context, id uint) (*cart.Cart, error) {
	var model CartModel
	if err := getDB(ctx, r.db).Preload("Items").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, err
	}
	return toCartEntity(&model), nil
}

// FindOpenByCustomer 查找顾客当前打开的购物车(含条目)
func (r *CartRepository) FindOpenByCustomer(ctx context.Context, customerID uint) (*cart.Cart, error) {
	var model CartModel
	err := getDB(ctx, r.db).Preload("Items").
		Where("open_key = ?", customerID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, err
	}
	return toCartEntity(&model), nil
}

// LockByID 以FOR UPDATE锁定并返回购物车行(不含条目)
// 必须在事务内调用,事务提交或回滚时释放锁
func (r *CartRepository) LockByID(ctx context.Context, id uint) (*cart.Cart, error) {
	var model CartModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, err
	}
	return toCartEntity(&model), nil
}

// FindItem 查找购物车中指定披萨的条目
func (r *CartRepository) FindItem(ctx context.Context, cartID, pizzaID uint) (*cart.LineItem, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).
		Where("cart_id = ? AND pizza_id = ?", cartID, pizzaID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrLineItemNotFound
		}
		return nil, err
	}
	item := toLineItemEntity(&model)
	return &item, nil
}

// CreateItem 创建条目
func (r *CartRepository) CreateItem(ctx context.Context, item *cart.LineItem) error {
	model := toCartItemModel(item)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return cart.ErrDuplicateLineItem
		}
		return err
	}
	item.ID = model.ID
	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt
	return nil
}

// UpdateItem 更新条目的数量与小计
func (r *CartRepository) UpdateItem(ctx context.Context, item *cart.LineItem) error {
	return getDB(ctx, r.db).Model(&CartItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"qty":         item.Qty,
			"final_price": item.FinalPrice,
		}).Error
}

// DeleteItem 删除条目
func (r *CartRepository) DeleteItem(ctx context.Context, itemID uint) error {
	result := getDB(ctx, r.db).Delete(&CartItemModel{}, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return cart.ErrLineItemNotFound
	}
	return nil
}

// RecomputeTotals 以SUM语句重算并持久化聚合值,返回刷新后的购物车(含条目)
// 在数据库侧聚合而非内存累加,保证与条目表的事务一致性
func (r *CartRepository) RecomputeTotals(ctx context.Context, cartID uint) (*cart.Cart, error) {
	db := getDB(ctx, r.db)

	type sums struct {
		TotalQty   int
		TotalPrice int64
	}
	var s sums
	err := db.Model(&CartItemModel{}).
		Select("COALESCE(SUM(qty), 0) AS total_qty, COALESCE(SUM(final_price), 0) AS total_price").
		Where("cart_id = ?", cartID).
		Scan(&s).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&CartModel{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"total_qty":   s.TotalQty,
			"total_price": s.TotalPrice,
		}).Error
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, cartID)
}

// Close 结单:置InOrder并释放打开位
// WHERE in_order = 0条件保证同一购物车只能结单一次,
// 竞争失败方(或重复结算)得到ErrCartClosed
func (r *CartRepository) Close(ctx context.Context, cartID uint) error {
	result := getDB(ctx, r.db).Model(&CartModel{}).
		Where("id = ? AND in_order = ?", cartID, false).
		Updates(map[string]interface{}{
			"in_order": true,
			"open_key": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// 不存在或已结单,区分两种情况
		var count int64
		if err := getDB(ctx, r.db).Model(&CartModel{}).
			Where("id = ?", cartID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return cart.ErrCartNotFound
		}
		return cart.ErrCartClosed
	}
	return nil
}

// toCartEntity 数据模型转领域实体
func toCartEntity(m *CartModel) *cart.Cart {
	items := make([]cart.LineItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, toLineItemEntity(&m.Items[i]))
	}
	return &cart.Cart{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		Items:       items,
		TotalQty:    m.TotalQty,
		TotalPrice:  m.TotalPrice,
		InOrder:     m.InOrder,
		ForAnonUser: m.ForAnonUser,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// toLineItemEntity 数据模型转领域实体
func toLineItemEntity(m *CartItemModel) cart.LineItem {
	return cart.LineItem{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		CartID:     m.CartID,
		PizzaID:    m.PizzaID,
		Qty:        m.Qty,
		FinalPrice: m.FinalPrice,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// toCartItemModel 领域实体转数据模型
func toCartItemModel(item *cart.LineItem) *CartItemModel {
	return &CartItemModel{
		ID:         item.ID,
		CustomerID: item.CustomerID,
		CartID:     item.CartID,
		PizzaID:    item.PizzaID,
		Qty:        item.Qty,
		FinalPrice: item.FinalPrice,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

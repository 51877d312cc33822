package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/pizzeria/internal/domain/customer"
)

// CustomerRepository 顾客仓储MySQL实现
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建顾客仓储
func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &CustomerRepository{db: db}
}

// Create 创建顾客
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := toCustomerModel(c)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return customer.ErrPhoneDuplicate
		}
		return err
	}
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找顾客
func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model CustomerModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, err
	}
	return toCustomerEntity(&model), nil
}

// FindByUserID 根据用户身份ID查找顾客
func (r *CustomerRepository) FindByUserID(ctx context.Context, userID uint) (*customer.Customer, error) {
	var model CustomerModel
	if err := getDB(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, err
	}
	return toCustomerEntity(&model), nil
}

// Update 更新顾客联系方式
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := toCustomerModel(c)
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return customer.ErrPhoneDuplicate
		}
		return err
	}
	return nil
}

// toCustomerModel 领域实体转数据模型
func toCustomerModel(c *customer.Customer) *CustomerModel {
	return &CustomerModel{
		ID:        c.ID,
		UserID:    c.UserID,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// toCustomerEntity 数据模型转领域实体
func toCustomerEntity(m *CustomerModel) *customer.Customer {
	return &customer.Customer{
		ID:        m.ID,
		UserID:    m.UserID,
		Phone:     m.Phone,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

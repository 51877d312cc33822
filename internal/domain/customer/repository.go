package customer

import (
	"context"
)

// Repository 顾客仓储接口
type Repository interface {
	// Create 创建顾客,电话号码唯一索引冲突返回ErrPhoneDuplicate
	Create(ctx context.Context, c *Customer) error

	// FindByID 根据ID查找顾客
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// FindByUserID 根据用户身份ID查找顾客
	FindByUserID(ctx context.Context, userID uint) (*Customer, error)

	// Update 更新顾客联系方式
	Update(ctx context.Context, c *Customer) error
}

package user

import (
	"context"
)

// Repository 用户仓储接口
// 接口定义在domain层（依赖倒置），实现在infrastructure/persistence/mysql层
type Repository interface {
	// Create 创建用户，邮箱已存在时返回ErrEmailDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户，不存在返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 根据邮箱查找用户，不存在返回ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update 更新用户信息
	Update(ctx context.Context, user *User) error
}

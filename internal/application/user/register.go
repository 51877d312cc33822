package user

import (
	"context"

	"github.com/xiebiao/pizzeria/internal/domain/customer"
	"github.com/xiebiao/pizzeria/internal/domain/user"
	"github.com/xiebiao/pizzeria/pkg/validate"
)

// TxManager 事务管理器接口
// 由infrastructure/persistence/mysql.TxManager实现,
// 定义在消费方便于单元测试注入假实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RegisterUseCase 用户注册用例
// 设计说明:
// 1. 注册同时创建用户身份(User)和顾客档案(Customer),在同一事务内
// 2. 电话号码在注册时即校验格式并保证唯一,结算时不再需要查重
type RegisterUseCase struct {
	userService  user.Service
	customerRepo customer.Repository
	txManager    TxManager
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(
	userService user.Service,
	customerRepo customer.Repository,
	txManager TxManager,
) *RegisterUseCase {
	return &RegisterUseCase{
		userService:  userService,
		customerRepo: customerRepo,
		txManager:    txManager,
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email     string
	Password  string
	Username  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	UserID     uint   `json:"user_id"`
	CustomerID uint   `json:"customer_id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	// 1. 电话号码格式校验(380开头共12位)
	if !validate.Phone(req.Phone) {
		return nil, customer.ErrInvalidPhone
	}

	// 2. 事务内创建用户+顾客档案,任一失败全部回滚
	var (
		u *user.User
		c *customer.Customer
	)
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		var err error
		u, err = uc.userService.Register(txCtx, req.Email, req.Password, req.Username, req.FirstName, req.LastName)
		if err != nil {
			return err
		}

		c = customer.NewCustomer(u.ID, req.Phone, req.Address)
		return uc.customerRepo.Create(txCtx, c)
	})
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		UserID:     u.ID,
		CustomerID: c.ID,
		Email:      u.Email,
		Username:   u.Username,
	}, nil
}

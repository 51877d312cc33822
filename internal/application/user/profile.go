package user

import (
	"context"

	"github.com/xiebiao/pizzeria/internal/domain/customer"
	"github.com/xiebiao/pizzeria/internal/domain/user"
	"github.com/xiebiao/pizzeria/pkg/validate"
)

// GetProfileUseCase 查询个人资料用例
// 返回用户身份+顾客档案,结算表单用它预填联系方式
type GetProfileUseCase struct {
	userRepo     user.Repository
	customerRepo customer.Repository
}

// NewGetProfileUseCase 创建查询资料用例
func NewGetProfileUseCase(userRepo user.Repository, customerRepo customer.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, customerRepo: customerRepo}
}

// ProfileResponse 个人资料响应
type ProfileResponse struct {
	User       UserInfo `json:"user"`
	CustomerID uint     `json:"customer_id"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
}

// Execute 执行查询
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*ProfileResponse, error) {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	c, err := uc.customerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{
		User: UserInfo{
			ID:        u.ID,
			Email:     u.Email,
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		},
		CustomerID: c.ID,
		Phone:      c.Phone,
		Address:    c.Address,
	}, nil
}

// UpdateProfileUseCase 更新联系方式用例
// 只影响之后的订单:已有订单保存的是下单时的快照
type UpdateProfileUseCase struct {
	userRepo     user.Repository
	customerRepo customer.Repository
	txManager    TxManager
}

// NewUpdateProfileUseCase 创建更新资料用例
func NewUpdateProfileUseCase(
	userRepo user.Repository,
	customerRepo customer.Repository,
	txManager TxManager,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
	}
}

// UpdateProfileRequest 更新资料请求,空字段表示不修改
type UpdateProfileRequest struct {
	UserID    uint
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

// Execute 执行更新
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, req UpdateProfileRequest) (*ProfileResponse, error) {
	// 先做格式校验,再进事务
	if req.Phone != "" && !validate.Phone(req.Phone) {
		return nil, customer.ErrInvalidPhone
	}
	if req.FirstName != "" && !validate.Name(req.FirstName) {
		return nil, customer.ErrInvalidName
	}
	if req.LastName != "" && !validate.Name(req.LastName) {
		return nil, customer.ErrInvalidName
	}

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		u, err := uc.userRepo.FindByID(txCtx, req.UserID)
		if err != nil {
			return err
		}
		c, err := uc.customerRepo.FindByUserID(txCtx, req.UserID)
		if err != nil {
			return err
		}

		if req.FirstName != "" {
			u.FirstName = req.FirstName
		}
		if req.LastName != "" {
			u.LastName = req.LastName
		}
		if err := uc.userRepo.Update(txCtx, u); err != nil {
			return err
		}

		if req.Phone != "" {
			c.Phone = req.Phone
		}
		if req.Address != "" {
			c.Address = req.Address
		}
		return uc.customerRepo.Update(txCtx, c)
	})
	if err != nil {
		return nil, err
	}

	getProfile := &GetProfileUseCase{userRepo: uc.userRepo, customerRepo: uc.customerRepo}
	return getProfile.Execute(ctx, req.UserID)
}

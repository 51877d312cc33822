package user

import (
	"time"
)

// User 用户身份实体（聚合根）
// 设计说明：
// 1. User只负责登录凭证与基本资料,下单联系方式在Customer聚合上
// 2. 密码已加密存储（bcrypt），不暴露明文
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository处理映射）
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Username  string
	FirstName string // 结算表单预填用
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, username, firstName, lastName string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

package dto

// RegisterRequest HTTP层注册请求
// 说明：HTTP层的DTO，包含参数验证tag
// 电话与姓名的格式校验在领域层(380开头12位、首字母大写的拉丁单词),
// binding tag只做长度与必填的粗筛
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=20"`
	Username  string `json:"username" binding:"required,min=2,max=50"`
	FirstName string `json:"first_name" binding:"required,min=2,max=50"`
	LastName  string `json:"last_name" binding:"required,min=2,max=50"`
	Phone     string `json:"phone" binding:"required,len=12"`
	Address   string `json:"address" binding:"max=150"`
}

// UserResponse 用户响应（不包含密码）
type UserResponse struct {
	ID         uint   `json:"id"`
	CustomerID uint   `json:"customer_id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
}

// UpdateProfileRequest 更新资料请求,省略的字段不修改
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"omitempty,min=2,max=50"`
	LastName  string `json:"last_name" binding:"omitempty,min=2,max=50"`
	Phone     string `json:"phone" binding:"omitempty,len=12"`
	Address   string `json:"address" binding:"omitempty,max=150"`
}

// ProfileResponse 个人资料响应
type ProfileResponse struct {
	User       UserInfo `json:"user"`
	CustomerID uint     `json:"customer_id"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
}

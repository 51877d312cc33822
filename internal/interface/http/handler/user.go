package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/pizzeria/internal/application/user"
	"github.com/xiebiao/pizzeria/internal/interface/http/dto"
	"github.com/xiebiao/pizzeria/internal/interface/http/middleware"
	"github.com/xiebiao/pizzeria/pkg/response"
)

// UserHandler 用户HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
// 3. 使用依赖注入，便于测试
type UserHandler struct {
	registerUseCase      *appuser.RegisterUseCase
	loginUseCase         *appuser.LoginUseCase
	logoutUseCase        *appuser.LogoutUseCase
	getProfileUseCase    *appuser.GetProfileUseCase
	updateProfileUseCase *appuser.UpdateProfileUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	loginUseCase *appuser.LoginUseCase,
	logoutUseCase *appuser.LogoutUseCase,
	getProfileUseCase *appuser.GetProfileUseCase,
	updateProfileUseCase *appuser.UpdateProfileUseCase,
) *UserHandler {
	return &UserHandler{
		registerUseCase:      registerUseCase,
		loginUseCase:         loginUseCase,
		logoutUseCase:        logoutUseCase,
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
	}
}

// Register 用户注册
// @Summary      用户注册
// @Description  创建用户账号与顾客档案,电话号码全局唯一
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      200 {object} response.Response{data=dto.UserResponse} "注册成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "邮箱或电话已被注册"
// @Router       /api/v1/users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.UserResponse{
		ID:         result.UserID,
		CustomerID: result.CustomerID,
		Email:      result.Email,
		Username:   result.Username,
	})
}

// Login 用户登录
// @Summary      用户登录
// @Description  验证邮箱密码，返回JWT Token
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=dto.LoginResponse} "登录成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /api/v1/users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.LoginResponse{
		User: dto.UserInfo{
			ID:        result.User.ID,
			Email:     result.User.Email,
			Username:  result.User.Username,
			FirstName: result.User.FirstName,
			LastName:  result.User.LastName,
		},
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Logout 用户登出
// @Summary      用户登出
// @Description  删除会话并将当前Token加入黑名单
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "登出成功"
// @Router       /api/v1/users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	accessToken := c.GetString("access_token")

	if err := h.logoutUseCase.Execute(c.Request.Context(), userID, accessToken); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// GetProfile 查询个人资料
// @Summary      查询个人资料
// @Description  返回用户信息与顾客档案,结算表单用于预填
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=dto.ProfileResponse} "查询成功"
// @Router       /api/v1/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	result, err := h.getProfileUseCase.Execute(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toProfileResponse(result))
}

// UpdateProfile 更新联系方式
// @Summary      更新联系方式
// @Description  修改姓名/电话/地址,只影响之后的订单
// @Tags         用户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateProfileRequest true "更新信息"
// @Success      200 {object} response.Response{data=dto.ProfileResponse} "更新成功"
// @Failure      400 {object} response.Response "格式不合法"
// @Failure      409 {object} response.Response "电话已被注册"
// @Router       /api/v1/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateProfileUseCase.Execute(c.Request.Context(), appuser.UpdateProfileRequest{
		UserID:    middleware.GetUserID(c),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toProfileResponse(result))
}

func toProfileResponse(r *appuser.ProfileResponse) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		User: dto.UserInfo{
			ID:        r.User.ID,
			Email:     r.User.Email,
			Username:  r.User.Username,
			FirstName: r.User.FirstName,
			LastName:  r.User.LastName,
		},
		CustomerID: r.CustomerID,
		Phone:      r.Phone,
		Address:    r.Address,
	}
}

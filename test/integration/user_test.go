package integration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 用户模块集成测试
// 覆盖注册登录的完整链路: Handler → UseCase → Service → Repository → MySQL/Redis

// TestUserRegister 测试用户注册功能
func TestUserRegister(t *testing.T) {
	RequireServer(t)

	t.Run("正常注册", func(t *testing.T) {
		email := GenerateTestEmail("normal_user")
		registerReq := map[string]string{
			"email":      email,
			"password":   "Test1234",
			"username":   "测试用户",
			"first_name": "Ivan",
			"last_name":  "Petrov",
			"phone":      GenerateTestPhone(),
			"address":    "Khreshchatyk 1",
		}

		resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.Equal(t, 0, resp.Code, "注册应该成功: %s", resp.Message)

		var data RegisterData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotZero(t, data.ID, "用户ID应该大于0")
		assert.NotZero(t, data.CustomerID, "顾客档案应随注册一并创建")
		assert.Equal(t, email, data.Email)
	})

	t.Run("重复邮箱注册应失败", func(t *testing.T) {
		email := GenerateTestEmail("duplicate_user")
		registerReq := map[string]string{
			"email":      email,
			"password":   "Test1234",
			"username":   "user1",
			"first_name": "Ivan",
			"last_name":  "Petrov",
			"phone":      GenerateTestPhone(),
		}

		resp1 := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		require.Equal(t, 0, resp1.Code, "第一次注册应该成功: %s", resp1.Message)

		registerReq["username"] = "user2"
		registerReq["phone"] = GenerateTestPhone()
		resp2 := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.NotEqual(t, 0, resp2.Code, "重复邮箱注册应该失败")
	})

	t.Run("弱密码应失败", func(t *testing.T) {
		registerReq := map[string]string{
			"email":      GenerateTestEmail("weak_pwd"),
			"password":   "12345678", // 纯数字
			"username":   "user",
			"first_name": "Ivan",
			"last_name":  "Petrov",
			"phone":      GenerateTestPhone(),
		}

		resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.NotEqual(t, 0, resp.Code, "纯数字密码应该失败")
	})

	t.Run("姓名格式错误应失败", func(t *testing.T) {
		registerReq := map[string]string{
			"email":      GenerateTestEmail("bad_name"),
			"password":   "Test1234",
			"username":   "user",
			"first_name": "ivan", // 首字母未大写
			"last_name":  "Petrov",
			"phone":      GenerateTestPhone(),
		}

		resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.NotEqual(t, 0, resp.Code, "姓名首字母未大写应该失败")
	})

	t.Run("手机号格式错误应失败", func(t *testing.T) {
		registerReq := map[string]string{
			"email":      GenerateTestEmail("bad_phone"),
			"password":   "Test1234",
			"username":   "user",
			"first_name": "Ivan",
			"last_name":  "Petrov",
			"phone":      "123456789012", // 非380开头
		}

		resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.NotEqual(t, 0, resp.Code, "非380开头的手机号应该失败")
	})
}

// TestUserLogin 测试用户登录功能
func TestUserLogin(t *testing.T) {
	RequireServer(t)

	email, token := RegisterTestUser(t, "login_user")
	require.NotEmpty(t, token)

	t.Run("密码错误应失败", func(t *testing.T) {
		loginReq := map[string]string{
			"email":    email,
			"password": "Wrong1234",
		}

		resp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
		assert.NotEqual(t, 0, resp.Code, "密码错误应该登录失败")
	})

	t.Run("登录后可访问个人资料", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/profile", token)
		assert.Equal(t, 0, resp.Code, "获取个人资料失败: %s", resp.Message)
	})

	t.Run("无Token访问受保护接口应失败", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/profile", "")
		assert.NotEqual(t, 0, resp.Code, "无Token应该被拒绝")
	})

	t.Run("登出后Token失效", func(t *testing.T) {
		_, logoutToken := RegisterTestUser(t, "logout_user")

		resp := PostJSON(t, BaseURL+"/users/logout", nil, logoutToken)
		require.Equal(t, 0, resp.Code, "登出失败: %s", resp.Message)

		profileResp := GetJSON(t, BaseURL+"/profile", logoutToken)
		assert.NotEqual(t, 0, profileResp.Code, "登出后的Token应该被拒绝")
	})
}

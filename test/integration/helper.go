package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试通用辅助函数
// 测试依赖一个已启动的完整服务(MySQL+Redis),运行方式:
//   make test-integration
//   go test -v ./test/integration/...
// 服务未启动时测试自动跳过,不会污染 go test ./... 的结果

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// PingURL 健康检查URL
	PingURL = "http://localhost:8080/ping"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// RegisterData 注册响应数据
type RegisterData struct {
	ID         uint   `json:"id"`
	CustomerID uint   `json:"customer_id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// PizzaItem 披萨列表项
type PizzaItem struct {
	ID        uint   `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	PriceYuan string `json:"price_yuan"`
	InStock   bool   `json:"in_stock"`
}

// CartItemData 购物车行项
type CartItemData struct {
	ID             uint   `json:"id"`
	PizzaID        uint   `json:"pizza_id"`
	PizzaName      string `json:"pizza_name"`
	PizzaSlug      string `json:"pizza_slug"`
	Qty            int    `json:"qty"`
	FinalPrice     int64  `json:"final_price"`
	FinalPriceYuan string `json:"final_price_yuan"`
}

// CartData 购物车响应数据
type CartData struct {
	ID             uint           `json:"id"`
	TotalQty       int            `json:"total_qty"`
	TotalPrice     int64          `json:"total_price"`
	TotalPriceYuan string         `json:"total_price_yuan"`
	InOrder        bool           `json:"in_order"`
	Items          []CartItemData `json:"items"`
}

// CheckoutData 结算响应数据
type CheckoutData struct {
	OrderID    uint   `json:"order_id"`
	OrderNo    string `json:"order_no"`
	Status     int    `json:"status"`
	StatusText string `json:"status_text"`
	TotalQty   int    `json:"total_qty"`
	TotalPrice int64  `json:"total_price"`
	Delivery   string `json:"delivery"`
}

// OrderData 订单详情响应数据
type OrderData struct {
	ID         uint           `json:"id"`
	OrderNo    string         `json:"order_no"`
	Status     int            `json:"status"`
	StatusText string         `json:"status_text"`
	Phone      string         `json:"phone"`
	TotalQty   int            `json:"total_qty"`
	TotalPrice int64          `json:"total_price"`
	Items      []CartItemData `json:"items"`
}

// RequireServer 服务不可用时跳过测试
// 避免集成测试在没有Docker环境的机器上直接报错
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(PingURL)
	if err != nil {
		t.Skipf("服务未启动,跳过集成测试: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Skipf("服务健康检查失败,跳过集成测试: status=%d", resp.StatusCode)
	}
}

// DoJSON 发送带JSON体的请求并解析统一响应
func DoJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	return &result
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return DoJSON(t, "POST", url, data, token)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return DoJSON(t, "PUT", url, data, token)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return DoJSON(t, "DELETE", url, data, token)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	return DoJSON(t, "GET", url, nil, token)
}

var phoneSeq uint32

// GenerateTestEmail 生成唯一的测试邮箱
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// GenerateTestPhone 生成唯一的测试手机号(380开头12位)
// 时间戳后8位加自增序号,避免同一纳秒内的并发冲突
func GenerateTestPhone() string {
	seq := atomic.AddUint32(&phoneSeq, 1)
	return fmt.Sprintf("380%09d", (time.Now().UnixNano()%100000000)*10+int64(seq%10))
}

// RegisterTestUser 注册测试用户并返回Token
// 封装注册+登录的完整流程,测试只需关注业务场景
func RegisterTestUser(t *testing.T, username string) (email string, token string) {
	t.Helper()

	email = GenerateTestEmail(username)
	registerReq := map[string]string{
		"email":      email,
		"password":   "Test1234",
		"username":   username,
		"first_name": "Ivan",
		"last_name":  "Petrov",
		"phone":      GenerateTestPhone(),
		"address":    "Khreshchatyk 1",
	}

	registerResp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}

	loginResp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return email, loginData.AccessToken
}

// FindInStockPizza 从目录取一个在售披萨
// 目录为空时跳过测试(依赖初始化数据)
func FindInStockPizza(t *testing.T) PizzaItem {
	t.Helper()

	resp := GetJSON(t, BaseURL+"/pizzas?page_size=5", "")
	require.Equal(t, 0, resp.Code, "获取披萨列表失败: %s", resp.Message)

	var page struct {
		List []PizzaItem `json:"list"`
	}
	err := json.Unmarshal(resp.Data, &page)
	require.NoError(t, err, "解析披萨列表失败")

	if len(page.List) == 0 {
		t.Skip("目录中没有在售披萨,请先导入初始化数据")
	}
	return page.List[0]
}

// GetCart 获取当前购物车
func GetCart(t *testing.T, token string) CartData {
	t.Helper()

	resp := GetJSON(t, BaseURL+"/cart", token)
	require.Equal(t, 0, resp.Code, "获取购物车失败: %s", resp.Message)

	var cart CartData
	err := json.Unmarshal(resp.Data, &cart)
	require.NoError(t, err, "解析购物车响应失败")
	return cart
}

// AddToCart 往购物车加一份披萨
func AddToCart(t *testing.T, token, pizzaSlug string) CartData {
	t.Helper()

	resp := PostJSON(t, BaseURL+"/cart/items", map[string]string{"pizza_slug": pizzaSlug}, token)
	require.Equal(t, 0, resp.Code, "加入购物车失败: %s", resp.Message)

	var cart CartData
	err := json.Unmarshal(resp.Data, &cart)
	require.NoError(t, err, "解析购物车响应失败")
	return cart
}

// CheckoutForm 构造一份合法的结算表单
func CheckoutForm(overrides map[string]interface{}) map[string]interface{} {
	form := map[string]interface{}{
		"first_name":      "Ivan",
		"last_name":       "Petrov",
		"phone":           GenerateTestPhone(),
		"address":         "Khreshchatyk 1",
		"delivery":        "delivery",
		"comment":         "集成测试订单",
		"order_date_time": time.Now().Add(2 * time.Hour).Format(time.RFC3339),
	}
	for k, v := range overrides {
		form[k] = v
	}
	return form
}

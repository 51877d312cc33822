package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 固定时钟,送达时间的校验都以它为基准
var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validDetails() Details {
	return Details{
		FirstName:     "Ivan",
		LastName:      "Petrov",
		Phone:         "380501234567",
		Address:       "Khreshchatyk 1",
		Delivery:      DeliveryModeDelivery,
		OrderDateTime: testNow.Add(2 * time.Hour),
	}
}

// TestDetails_Validate 测试结算表单校验
func TestDetails_Validate(t *testing.T) {
	t.Run("合法表单通过", func(t *testing.T) {
		assert.NoError(t, validDetails().Validate(testNow))
	})

	t.Run("电话格式不合法", func(t *testing.T) {
		for _, phone := range []string{"", "1234567890", "38050123456", "3805012345678", "+380501234567"} {
			d := validDetails()
			d.Phone = phone
			assert.ErrorIs(t, d.Validate(testNow), ErrInvalidPhone, "phone=%q", phone)
		}
	})

	t.Run("姓名格式不合法", func(t *testing.T) {
		cases := []struct{ first, last string }{
			{"ivan", "Petrov"},  // 首字母小写
			{"Ivan", "petrov"},  // 姓小写
			{"IVAN", "Petrov"},  // 全大写
			{"Ivan2", "Petrov"}, // 含数字
			{"", "Petrov"},      // 空
		}
		for _, c := range cases {
			d := validDetails()
			d.FirstName = c.first
			d.LastName = c.last
			assert.ErrorIs(t, d.Validate(testNow), ErrInvalidName, "first=%q last=%q", c.first, c.last)
		}
	})

	t.Run("送达时间提前量不足", func(t *testing.T) {
		d := validDetails()
		d.OrderDateTime = testNow.Add(30 * time.Minute)
		assert.ErrorIs(t, d.Validate(testNow), ErrLeadTimeViolation)

		d.OrderDateTime = testNow.Add(-time.Hour) // 过去的时间
		assert.ErrorIs(t, d.Validate(testNow), ErrLeadTimeViolation)
	})

	t.Run("恰好1小时是边界合法值", func(t *testing.T) {
		d := validDetails()
		d.OrderDateTime = testNow.Add(MinLeadTime)
		assert.NoError(t, d.Validate(testNow))
	})

	t.Run("校验顺序电话优先", func(t *testing.T) {
		// 电话和姓名同时非法时,先报电话错误
		d := validDetails()
		d.Phone = "bad"
		d.FirstName = "ivan"
		d.OrderDateTime = testNow // 提前量也不足
		assert.ErrorIs(t, d.Validate(testNow), ErrInvalidPhone)

		// 只修电话,报姓名错误
		d.Phone = "380501234567"
		assert.ErrorIs(t, d.Validate(testNow), ErrInvalidName)
	})
}

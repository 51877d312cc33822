package order

import (
	"time"

	"github.com/xiebiao/pizzeria/pkg/validate"
)

// MinLeadTime 最短备餐时间:期望送达时间必须晚于当前时间至少1小时
const MinLeadTime = time.Hour

// Details 结算表单(联系方式+配送要求)
// 校验通过后由NewOrder原样快照进订单
type Details struct {
	FirstName     string
	LastName      string
	Phone         string
	Address       string
	Delivery      DeliveryMode
	Comment       string
	OrderDateTime time.Time
}

// Validate 校验结算表单,失败即返回,顺序固定:
// 1. 电话格式 2. 姓名格式 3. 送达时间提前量
// now由调用方注入,便于测试固定时钟
func (d Details) Validate(now time.Time) error {
	if !validate.Phone(d.Phone) {
		return ErrInvalidPhone
	}
	if !validate.Name(d.FirstName) || !validate.Name(d.LastName) {
		return ErrInvalidName
	}
	if d.OrderDateTime.Before(now.Add(MinLeadTime)) {
		return ErrLeadTimeViolation
	}
	return nil
}

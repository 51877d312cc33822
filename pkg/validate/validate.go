package validate

import "regexp"

// 联系方式校验规则
// 注册与结算共用同一套规则，保证两处录入的数据口径一致：
// - 电话：固定前缀380 + 9位数字（乌克兰手机号格式）
// - 姓名：首字母大写的单个拉丁单词
var (
	phoneRe = regexp.MustCompile(`^380\d{9}$`)
	nameRe  = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

// Phone 校验电话号码格式
func Phone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// Name 校验姓名格式（名或姓均适用）
func Name(name string) bool {
	return nameRe.MatchString(name)
}

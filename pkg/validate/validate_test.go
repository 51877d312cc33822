package validate

import "testing"

// TestPhone 电话号码格式校验
func TestPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"380961234567", true},
		{"380000000000", true},
		{"38096123456", false},    // 少一位
		{"3809612345678", false},  // 多一位
		{"+380961234567", false},  // 不允许加号
		{"480961234567", false},   // 前缀错误
		{"380a61234567", false},   // 含字母
		{"", false},
	}

	for _, c := range cases {
		if got := Phone(c.phone); got != c.want {
			t.Errorf("Phone(%q) = %v, 期望 %v", c.phone, got, c.want)
		}
	}
}

// TestName 姓名格式校验
func TestName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Ivan", true},
		{"Petrenko", true},
		{"ivan", false},     // 首字母未大写
		{"IVAN", false},     // 全大写
		{"Iv an", false},    // 含空格
		{"Ivan1", false},    // 含数字
		{"I", false},        // 只有一个字母
		{"", false},
	}

	for _, c := range cases {
		if got := Name(c.name); got != c.want {
			t.Errorf("Name(%q) = %v, 期望 %v", c.name, got, c.want)
		}
	}
}

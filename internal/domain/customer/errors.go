package customer

import (
	apperrors "github.com/xiebiao/pizzeria/pkg/errors"
)

// 顾客领域错误定义
var (
	// ErrCustomerNotFound 顾客不存在
	ErrCustomerNotFound = apperrors.New(apperrors.ErrCodeCustomerNotFound, "顾客不存在")

	// ErrPhoneDuplicate 电话号码已被注册
	ErrPhoneDuplicate = apperrors.New(apperrors.ErrCodePhoneDuplicate, "电话号码已被注册")

	// ErrInvalidPhone 电话号码格式不合法
	ErrInvalidPhone = apperrors.New(apperrors.ErrCodeInvalidPhone, "电话号码格式不正确(380开头,后接9位数字)")

	// ErrInvalidName 姓名格式不合法
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidName, "姓名格式不正确(首字母大写的拉丁单词)")
)

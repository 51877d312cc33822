package order

import (
	apperrors "github.com/xiebiao/pizzeria/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "订单不存在")

	// ErrInvalidTransition 非法的状态流转(只允许向前)
	ErrInvalidTransition = apperrors.New(apperrors.ErrCodeInvalidTransition, "订单状态不允许此操作")

	// ErrInvalidPhone 电话号码格式不合法
	ErrInvalidPhone = apperrors.New(apperrors.ErrCodeInvalidPhone, "电话号码格式不正确(380开头,后接9位数字)")

	// ErrInvalidName 姓名格式不合法
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidName, "姓名格式不正确(首字母大写的拉丁单词)")

	// ErrLeadTimeViolation 期望送达时间距当前不足1小时
	ErrLeadTimeViolation = apperrors.New(apperrors.ErrCodeLeadTimeViolation, "送达时间至少要在1小时之后")

	// ErrEmptyCart 购物车为空,无法结算
	ErrEmptyCart = apperrors.New(apperrors.ErrCodeEmptyCart, "购物车是空的,无法下单")
)

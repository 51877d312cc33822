package cart

import (
	apperrors "github.com/xiebiao/pizzeria/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrCartNotFound 购物车不存在
	ErrCartNotFound = apperrors.New(apperrors.ErrCodeCartNotFound, "购物车不存在")

	// ErrInvalidQuantity 数量不合法(必须>=1,删除请走移除接口)
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "购买数量必须大于0")

	// ErrLineItemNotFound 购物车中没有该披萨的条目
	ErrLineItemNotFound = apperrors.New(apperrors.ErrCodeLineItemNotFound, "购物车中没有该商品")

	// ErrDuplicateLineItem 同一购物车中该披萨的条目已存在
	ErrDuplicateLineItem = apperrors.New(apperrors.ErrCodeDuplicateLineItem, "购物车中已有该商品")

	// ErrCartClosed 购物车已结单,不允许再变更
	ErrCartClosed = apperrors.New(apperrors.ErrCodeCartClosed, "购物车已结单,无法修改")
)

package catalog

import (
	apperrors "github.com/xiebiao/pizzeria/pkg/errors"
)

// 目录领域错误定义
var (
	// ErrPizzaNotFound 披萨不存在
	ErrPizzaNotFound = apperrors.New(apperrors.ErrCodePizzaNotFound, "披萨不存在")

	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrPizzaUnavailable 披萨已售罄或下架
	ErrPizzaUnavailable = apperrors.New(apperrors.ErrCodePizzaUnavailable, "该披萨暂时无法购买")
)

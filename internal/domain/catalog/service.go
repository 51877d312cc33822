package catalog

import (
	"context"
)

// Service 目录领域服务
// 设计说明:
// 1. 封装查询参数的规范化与跨实体的查询逻辑
// 2. 依赖Repository接口,不依赖具体实现
type Service interface {
	// ListPizzas 按条件分页查询在售披萨
	// 配料筛选为严格AND语义:披萨必须包含每一个选中的配料
	ListPizzas(ctx context.Context, params ListParams) ([]*Pizza, int64, error)

	// GetPizzaBySlug 根据Slug获取披萨详情(含配料)
	GetPizzaBySlug(ctx context.Context, slug string) (*Pizza, error)

	// GetPizzaByID 根据ID获取披萨
	GetPizzaByID(ctx context.Context, id uint) (*Pizza, error)

	// ListCategories 查询分类列表(含披萨数量)
	ListCategories(ctx context.Context) ([]*Category, error)

	// ListIngredients 查询配料列表
	ListIngredients(ctx context.Context) ([]*Ingredient, error)
}

type service struct {
	repo Repository
}

// NewService 创建目录领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListPizzas 分页查询披萨
func (s *service) ListPizzas(ctx context.Context, params ListParams) ([]*Pizza, int64, error) {
	// 分页参数规范化
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	return s.repo.ListPizzas(ctx, params)
}

// GetPizzaBySlug 根据Slug获取披萨
func (s *service) GetPizzaBySlug(ctx context.Context, slug string) (*Pizza, error) {
	return s.repo.FindPizzaBySlug(ctx, slug)
}

// GetPizzaByID 根据ID获取披萨
func (s *service) GetPizzaByID(ctx context.Context, id uint) (*Pizza, error) {
	return s.repo.FindPizzaByID(ctx, id)
}

// ListCategories 查询分类列表
func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

// ListIngredients 查询配料列表
func (s *service) ListIngredients(ctx context.Context) ([]*Ingredient, error) {
	return s.repo.ListIngredients(ctx)
}

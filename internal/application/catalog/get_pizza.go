package catalog

import (
	"context"

	"github.com/xiebiao/pizzeria/internal/domain/catalog"
	"github.com/xiebiao/pizzeria/internal/infrastructure/persistence/redis"
)

// GetPizzaUseCase 披萨详情用例
// Cache-Aside:先读Redis,未命中回源数据库并回填
type GetPizzaUseCase struct {
	catalogService catalog.Service
	cache          *redis.CatalogCache
}

// NewGetPizzaUseCase 创建披萨详情用例
func NewGetPizzaUseCase(catalogService catalog.Service, cache *redis.CatalogCache) *GetPizzaUseCase {
	return &GetPizzaUseCase{catalogService: catalogService, cache: cache}
}

// Execute 执行查询
func (uc *GetPizzaUseCase) Execute(ctx context.Context, slug string) (*PizzaView, error) {
	// 1. 读缓存
	if cached, _ := uc.cache.GetPizza(ctx, slug); cached != nil {
		view := toPizzaView(cached)
		return &view, nil
	}

	// 2. 回源数据库
	pizza, err := uc.catalogService.GetPizzaBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存,失败不影响响应
	_ = uc.cache.SetPizza(ctx, pizza)

	view := toPizzaView(pizza)
	return &view, nil
}

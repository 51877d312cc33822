package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/pizzeria/internal/domain/catalog"
	"github.com/xiebiao/pizzeria/internal/infrastructure/config"
)

// CatalogCache 目录缓存
// 设计说明:
// 1. 缓存披萨详情与侧边栏(分类+配料),菜单读多写少
// 2. Cache-Aside模式:未命中回源数据库再回填,读取失败视为未命中
// 3. 后台改菜单时按key失效,不做主动刷新
type CatalogCache struct {
	client *redis.Client
	cfg    *config.CacheConfig
}

// NewCatalogCache 创建目录缓存
func NewCatalogCache(client *redis.Client, cfg *config.Config) *CatalogCache {
	return &CatalogCache{client: client, cfg: &cfg.Cache}
}

// Sidebar 侧边栏数据(分类列表+配料列表)
type Sidebar struct {
	Categories  []*catalog.Category   `json:"categories"`
	Ingredients []*catalog.Ingredient `json:"ingredients"`
}

// GetPizza 读取披萨详情缓存,未命中返回(nil, nil)
func (c *CatalogCache) GetPizza(ctx context.Context, slug string) (*catalog.Pizza, error) {
	key := pizzaKey(slug)
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		// 缓存故障按未命中处理,不阻断请求
		return nil, nil
	}

	var pizza catalog.Pizza
	if err := json.Unmarshal(data, &pizza); err != nil {
		return nil, nil
	}
	return &pizza, nil
}

// SetPizza 写入披萨详情缓存
func (c *CatalogCache) SetPizza(ctx context.Context, pizza *catalog.Pizza) error {
	data, err := json.Marshal(pizza)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, pizzaKey(pizza.Slug), data, c.cfg.PizzaDetailTTL).Err()
}

// DeletePizza 失效披萨详情缓存(后台改价、下架时调用)
func (c *CatalogCache) DeletePizza(ctx context.Context, slug string) error {
	return c.client.Del(ctx, pizzaKey(slug)).Err()
}

// GetSidebar 读取侧边栏缓存,未命中返回(nil, nil)
func (c *CatalogCache) GetSidebar(ctx context.Context) (*Sidebar, error) {
	data, err := c.client.Get(ctx, sidebarKey).Bytes()
	if err != nil {
		return nil, nil
	}

	var sidebar Sidebar
	if err := json.Unmarshal(data, &sidebar); err != nil {
		return nil, nil
	}
	return &sidebar, nil
}

// SetSidebar 写入侧边栏缓存
func (c *CatalogCache) SetSidebar(ctx context.Context, sidebar *Sidebar) error {
	data, err := json.Marshal(sidebar)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sidebarKey, data, c.cfg.SidebarTTL).Err()
}

const sidebarKey = "catalog:sidebar"

func pizzaKey(slug string) string {
	return fmt.Sprintf("catalog:pizza:%s", slug)
}

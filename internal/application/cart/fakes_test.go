package cart

import (
	"context"
	"sync"

	"github.com/xiebiao/pizzeria/internal/domain/cart"
	"github.com/xiebiao/pizzeria/internal/domain/catalog"
)

// 内存假实现,行为对齐MySQL仓储的约定:
// 唯一约束、ErrXxx错误、RecomputeTotals的SUM语义

// fakeTxManager 直接执行回调,不提供真正的回滚
// 原子性断言通过调用顺序与错误传播来验证
type fakeTxManager struct{}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeCartRepo 购物车仓储假实现
// openByCustomer模拟open_key唯一索引:每顾客至多一个打开购物车
type fakeCartRepo struct {
	mu             sync.Mutex
	nextCartID     uint
	nextItemID     uint
	carts          map[uint]*cart.Cart
	openByCustomer map[uint]uint            // customerID -> 打开的cartID
	items          map[uint]*cart.LineItem  // itemID -> 条目
	itemByCartPie  map[[2]uint]uint         // (cartID,pizzaID) -> itemID,模拟唯一索引
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		nextCartID:     1,
		nextItemID:     1,
		carts:          make(map[uint]*cart.Cart),
		openByCustomer: make(map[uint]uint),
		items:          make(map[uint]*cart.LineItem),
		itemByCartPie:  make(map[[2]uint]uint),
	}
}

func (r *fakeCartRepo) FindOrCreateOpen(ctx context.Context, customerID uint) (*cart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.openByCustomer[customerID]; ok {
		return r.snapshot(id), nil
	}
	c := &cart.Cart{ID: r.nextCartID, CustomerID: customerID}
	r.nextCartID++
	r.carts[c.ID] = c
	r.openByCustomer[customerID] = c.ID
	return r.snapshot(c.ID), nil
}

func (r *fakeCartRepo) FindByID(ctx context.Context, id uint) (*cart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.carts[id]; !ok {
		return nil, cart.ErrCartNotFound
	}
	return r.snapshot(id), nil
}

func (r *fakeCartRepo) FindOpenByCustomer(ctx context.Context, customerID uint) (*cart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.openByCustomer[customerID]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	return r.snapshot(id), nil
}

func (r *fakeCartRepo) LockByID(ctx context.Context, id uint) (*cart.Cart, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeCartRepo) FindItem(ctx context.Context, cartID, pizzaID uint) (*cart.LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.itemByCartPie[[2]uint{cartID, pizzaID}]
	if !ok {
		return nil, cart.ErrLineItemNotFound
	}
	item := *r.items[id]
	return &item, nil
}

func (r *fakeCartRepo) CreateItem(ctx context.Context, item *cart.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]uint{item.CartID, item.PizzaID}
	if _, ok := r.itemByCartPie[key]; ok {
		return cart.ErrDuplicateLineItem
	}
	item.ID = r.nextItemID
	r.nextItemID++
	stored := *item
	r.items[item.ID] = &stored
	r.itemByCartPie[key] = item.ID
	return nil
}

func (r *fakeCartRepo) UpdateItem(ctx context.Context, item *cart.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[item.ID]
	if !ok {
		return cart.ErrLineItemNotFound
	}
	stored.Qty = item.Qty
	stored.FinalPrice = item.FinalPrice
	return nil
}

func (r *fakeCartRepo) DeleteItem(ctx context.Context, itemID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return cart.ErrLineItemNotFound
	}
	delete(r.itemByCartPie, [2]uint{item.CartID, item.PizzaID})
	delete(r.items, itemID)
	return nil
}

func (r *fakeCartRepo) RecomputeTotals(ctx context.Context, cartID uint) (*cart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[cartID]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	var qty int
	var price int64
	for _, item := range r.items {
		if item.CartID == cartID {
			qty += item.Qty
			price += item.FinalPrice
		}
	}
	c.TotalQty = qty
	c.TotalPrice = price
	return r.snapshot(cartID), nil
}

func (r *fakeCartRepo) Close(ctx context.Context, cartID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[cartID]
	if !ok {
		return cart.ErrCartNotFound
	}
	if c.InOrder {
		return cart.ErrCartClosed
	}
	c.InOrder = true
	delete(r.openByCustomer, c.CustomerID)
	return nil
}

// snapshot 返回带条目的副本,调用方必须已持有锁
func (r *fakeCartRepo) snapshot(cartID uint) *cart.Cart {
	c := *r.carts[cartID]
	c.Items = nil
	for _, item := range r.items {
		if item.CartID == cartID {
			c.Items = append(c.Items, *item)
		}
	}
	return &c
}

// fakeCatalogRepo 目录仓储假实现,只支持测试用到的读方法
type fakeCatalogRepo struct {
	pizzas map[uint]*catalog.Pizza
}

func newFakeCatalogRepo(pizzas ...*catalog.Pizza) *fakeCatalogRepo {
	r := &fakeCatalogRepo{pizzas: make(map[uint]*catalog.Pizza)}
	for _, p := range pizzas {
		r.pizzas[p.ID] = p
	}
	return r
}

func (r *fakeCatalogRepo) FindPizzaByID(ctx context.Context, id uint) (*catalog.Pizza, error) {
	p, ok := r.pizzas[id]
	if !ok {
		return nil, catalog.ErrPizzaNotFound
	}
	return p, nil
}

func (r *fakeCatalogRepo) FindPizzaBySlug(ctx context.Context, slug string) (*catalog.Pizza, error) {
	for _, p := range r.pizzas {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, catalog.ErrPizzaNotFound
}

func (r *fakeCatalogRepo) ListPizzas(ctx context.Context, params catalog.ListParams) ([]*catalog.Pizza, int64, error) {
	return nil, 0, nil
}

func (r *fakeCatalogRepo) ListCategories(ctx context.Context) ([]*catalog.Category, error) {
	return nil, nil
}

func (r *fakeCatalogRepo) FindCategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	return nil, catalog.ErrCategoryNotFound
}

func (r *fakeCatalogRepo) ListIngredients(ctx context.Context) ([]*catalog.Ingredient, error) {
	return nil, nil
}

package order

import (
	"context"
	"sync"

	"github.com/xiebiao/pizzeria/internal/domain/cart"
	"github.com/xiebiao/pizzeria/internal/domain/order"
)

// fakeTxManager 直接执行回调
// rollback语义由调用方断言:回调失败时不应有半成品落库
type fakeTxManager struct{}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeCartRepo 购物车仓储假实现(订单侧只用到读/锁/结单)
type fakeCartRepo struct {
	mu             sync.Mutex
	carts          map[uint]*cart.Cart
	openByCustomer map[uint]uint
}

func newFakeCartRepo(carts ...*cart.Cart) *fakeCartRepo {
	r := &fakeCartRepo{
		carts:          make(map[uint]*cart.Cart),
		openByCustomer: make(map[uint]uint),
	}
	for _, c := range carts {
		r.carts[c.ID] = c
		if !c.InOrder {
			r.openByCustomer[c.CustomerID] = c.ID
		}
	}
	return r
}

func (r *fakeCartRepo) FindOrCreateOpen(ctx context.Context, customerID uint) (*cart.Cart, error) {
	return r.FindOpenByCustomer(ctx, customerID)
}

func (r *fakeCartRepo) FindByID(ctx context.Context, id uint) (*cart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[id]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCartRepo) FindOpenByCustomer(ctx context.Context, customerID uint) (*cart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.openByCustomer[customerID]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	cp := *r.carts[id]
	return &cp, nil
}

func (r *fakeCartRepo) LockByID(ctx context.Context, id uint) (*cart.Cart, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeCartRepo) FindItem(ctx context.Context, cartID, pizzaID uint) (*cart.LineItem, error) {
	return nil, cart.ErrLineItemNotFound
}

func (r *fakeCartRepo) CreateItem(ctx context.Context, item *cart.LineItem) error { return nil }

func (r *fakeCartRepo) UpdateItem(ctx context.Context, item *cart.LineItem) error { return nil }

func (r *fakeCartRepo) DeleteItem(ctx context.Context, itemID uint) error { return nil }

func (r *fakeCartRepo) RecomputeTotals(ctx context.Context, cartID uint) (*cart.Cart, error) {
	return r.FindByID(ctx, cartID)
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

// fakeOrderRepo 订单仓储假实现
// failCreate用于模拟订单落库失败,验证结算的原子性
type fakeOrderRepo struct {
	mu         sync.Mutex
	nextID     uint
	orders     map[uint]*order.Order
	byOrderNo  map[string]uint
	failCreate error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		nextID:    1,
		orders:    make(map[uint]*order.Order),
		byOrderNo: make(map[string]uint),
	}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return r.failCreate
	}
	o.ID = r.nextID
	r.nextID++
	stored := *o
	r.orders[o.ID] = &stored
	r.byOrderNo[o.OrderNo] = o.ID
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byOrderNo[orderNo]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	cp := *r.orders[id]
	return &cp, nil
}

func (r *fakeOrderRepo) FindByCartID(ctx context.Context, cartID uint) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.CartID == cartID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[o.ID]
	if !ok {
		return order.ErrOrderNotFound
	}
	stored.Status = o.Status
	stored.UpdatedAt = o.UpdatedAt
	return nil
}

func (r *fakeOrderRepo) ListByCustomerID(ctx context.Context, customerID uint, page, pageSize int) ([]*order.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*order.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			cp := *o
			result = append(result, &cp)
		}
	}
	// 新订单在前(按ID倒序近似创建时间倒序)
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].ID > result[i].ID {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, int64(len(result)), nil
}

// fakePublisher 记录发布的事件
type fakePublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *fakePublisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, routingKey)
	return nil
}

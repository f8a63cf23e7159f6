package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"restaurant_manager/model"
)

// memStore is an in-memory RecordStore for exercising the lifecycle services
// without a database. Lookups hand out copies, so mutations only take effect
// through the Save methods, the same contract the gorm store gives.
type memStore struct {
	mu        sync.Mutex
	nextId    uint
	orders    map[uint]*model.Order
	items     map[uint]*model.OrderItem
	tables    map[uint]*model.Table
	menuItems map[uint]*model.MenuItem
	discounts map[uint]*model.Discount

	// failSaveOrder makes the next SaveOrder fail, simulating a persistence
	// error that aborts the surrounding unit of work.
	failSaveOrder error
}

func newMemStore() *memStore {
	return &memStore{
		orders:    map[uint]*model.Order{},
		items:     map[uint]*model.OrderItem{},
		tables:    map[uint]*model.Table{},
		menuItems: map[uint]*model.MenuItem{},
		discounts: map[uint]*model.Discount{},
	}
}

func (s *memStore) allocId() uint {
	s.nextId++
	return s.nextId
}

func (s *memStore) Atomically(ctx context.Context, fn func(RecordStore) error) error {
	return fn(s)
}

func (s *memStore) OrderByID(ctx context.Context, id uint) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	order := *stored
	order.Items = nil

	var itemIds []uint
	for itemId, item := range s.items {
		if item.OrderId == id {
			itemIds = append(itemIds, itemId)
		}
	}
	sort.Slice(itemIds, func(i, j int) bool { return itemIds[i] < itemIds[j] })
	for _, itemId := range itemIds {
		item := *s.items[itemId]
		if menuItem, ok := s.menuItems[item.MenuItemId]; ok {
			item.MenuItem = *menuItem
		}
		order.Items = append(order.Items, item)
	}
	return &order, nil
}

func (s *memStore) OrderItemByID(ctx context.Context, id uint) (*model.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	item := *stored
	if menuItem, ok := s.menuItems[item.MenuItemId]; ok {
		item.MenuItem = *menuItem
	}
	return &item, nil
}

func (s *memStore) TableByID(ctx context.Context, id uint) (*model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.tables[id]
	if !ok {
		return nil, nil
	}
	table := *stored
	return &table, nil
}

func (s *memStore) MenuItemByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.menuItems[id]
	if !ok {
		return nil, nil
	}
	menuItem := *stored
	return &menuItem, nil
}

func (s *memStore) DiscountByID(ctx context.Context, id uint) (*model.Discount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.discounts[id]
	if !ok {
		return nil, nil
	}
	discount := *stored
	return &discount, nil
}

func (s *memStore) ActiveDiscountAt(ctx context.Context, at time.Time) (*model.Discount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var best *model.Discount
	for _, discount := range s.discounts {
		if !discount.IsActive || discount.StartTime.After(at) || !discount.EndTime.After(at) {
			continue
		}
		if best == nil || discount.StartTime.Before(best.StartTime) {
			best = discount
		}
	}
	if best == nil {
		return nil, nil
	}
	found := *best
	return &found, nil
}

func (s *memStore) SaveOrder(ctx context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failSaveOrder != nil {
		return s.failSaveOrder
	}
	if order.ID == 0 {
		order.ID = s.allocId()
	}
	stored := *order
	stored.Items = nil
	s.orders[order.ID] = &stored
	return nil
}

func (s *memStore) SaveOrderItem(ctx context.Context, item *model.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == 0 {
		item.ID = s.allocId()
	}
	stored := *item
	stored.MenuItem = model.MenuItem{}
	s.items[item.ID] = &stored
	return nil
}

func (s *memStore) SaveTable(ctx context.Context, table *model.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if table.ID == 0 {
		table.ID = s.allocId()
	}
	stored := *table
	s.tables[table.ID] = &stored
	return nil
}

func (s *memStore) DeleteOrderItem(ctx context.Context, item *model.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, item.ID)
	return nil
}

func (s *memStore) addTable(free, active bool) *model.Table {
	table := &model.Table{NumberOfSeats: 4, IsFree: free, IsActive: active}
	s.SaveTable(context.Background(), table)
	return table
}

func (s *memStore) addMenuItem(name string, price float64, prepSeconds int, active bool) *model.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	menuItem := &model.MenuItem{
		Name:            name,
		Price:           price,
		PrepTimeSeconds: prepSeconds,
		IsActive:        active,
		CategoryId:      1,
	}
	menuItem.ID = s.allocId()
	s.menuItems[menuItem.ID] = menuItem
	return menuItem
}

func (s *memStore) addDiscount(percent float64, start, end time.Time, active bool) *model.Discount {
	s.mu.Lock()
	defer s.mu.Unlock()

	discount := &model.Discount{
		DiscountPercent: percent,
		StartTime:       start,
		EndTime:         end,
		IsActive:        active,
	}
	discount.ID = s.allocId()
	s.discounts[discount.ID] = discount
	return discount
}

// memQueue is an in-memory KitchenQueue.
type memQueue struct {
	mu      sync.Mutex
	entries []string
}

func (q *memQueue) Push(ctx context.Context, payload []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(q.entries, string(payload))
	return nil
}

func (q *memQueue) Entries(ctx context.Context) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string(nil), q.entries...), nil
}

func (q *memQueue) Remove(ctx context.Context, match func(entry string) bool) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	remaining := make([]string, 0, len(q.entries))
	found := false
	for _, entry := range q.entries {
		if match(entry) {
			found = true
			continue
		}
		remaining = append(remaining, entry)
	}
	if !found {
		return false, nil
	}
	q.entries = remaining
	return true, nil
}

func newTestServices() (*memStore, *memQueue, *OrderService, *KitchenService) {
	store := newMemStore()
	queue := &memQueue{}
	kitchen := NewKitchenService(store, queue)
	orders := NewOrderService(store, kitchen)
	return store, queue, orders, kitchen
}

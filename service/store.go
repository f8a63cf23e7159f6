package service

import (
	"context"
	"time"

	"restaurant_manager/model"
)

// RecordStore is the transactional boundary between the lifecycle logic and
// the database. Lookups return (nil, nil) when the record does not exist.
// Each call is atomic on its own; multi-step mutations must run inside
// Atomically, which supplies a store bound to one transaction.
type RecordStore interface {
	Atomically(ctx context.Context, fn func(RecordStore) error) error

	// OrderByID loads an order with its items and their menu items,
	// ordered by item id.
	OrderByID(ctx context.Context, id uint) (*model.Order, error)
	OrderItemByID(ctx context.Context, id uint) (*model.OrderItem, error)
	TableByID(ctx context.Context, id uint) (*model.Table, error)
	MenuItemByID(ctx context.Context, id uint) (*model.MenuItem, error)
	DiscountByID(ctx context.Context, id uint) (*model.Discount, error)

	// ActiveDiscountAt returns the active discount whose validity window
	// contains the given moment. When several overlap, the one with the
	// earliest start time wins.
	ActiveDiscountAt(ctx context.Context, at time.Time) (*model.Discount, error)

	SaveOrder(ctx context.Context, order *model.Order) error
	SaveOrderItem(ctx context.Context, item *model.OrderItem) error
	SaveTable(ctx context.Context, table *model.Table) error
	DeleteOrderItem(ctx context.Context, item *model.OrderItem) error
}

// KitchenQueue is the raw list the preparation protocol runs on. Entries are
// opaque payloads; serialization lives in the kitchen service. Remove must
// read, filter and rewrite the list as one atomic step: a Push landing while
// a removal is in flight must never be lost.
type KitchenQueue interface {
	Push(ctx context.Context, payload []byte) error
	Entries(ctx context.Context) ([]string, error)
	// Remove drops every entry the match reports true for and reports
	// whether anything was dropped.
	Remove(ctx context.Context, match func(entry string) bool) (bool, error)
}

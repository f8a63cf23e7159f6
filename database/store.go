package database

import (
	"context"
	"errors"
	"time"

	"restaurant_manager/model"
	"restaurant_manager/service"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the gorm-backed record store the lifecycle services run on.
// Atomically hands the callback a store bound to one transaction, so a
// Confirm touching N items plus the order commits as a single unit.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Atomically(ctx context.Context, fn func(service.RecordStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) OrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		Preload("Items.MenuItem").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (s *Store) OrderItemByID(ctx context.Context, id uint) (*model.OrderItem, error) {
	var item model.OrderItem
	err := s.db.WithContext(ctx).Preload("MenuItem").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (s *Store) TableByID(ctx context.Context, id uint) (*model.Table, error) {
	var table model.Table
	err := s.db.WithContext(ctx).First(&table, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table, nil
}

func (s *Store) MenuItemByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	var menuItem model.MenuItem
	err := s.db.WithContext(ctx).First(&menuItem, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &menuItem, nil
}

func (s *Store) DiscountByID(ctx context.Context, id uint) (*model.Discount, error) {
	var discount model.Discount
	err := s.db.WithContext(ctx).First(&discount, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &discount, nil
}

func (s *Store) ActiveDiscountAt(ctx context.Context, at time.Time) (*model.Discount, error) {
	var discount model.Discount
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND start_time <= ? AND end_time > ?", true, at, at).
		Order("start_time ASC").
		First(&discount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &discount, nil
}

func (s *Store) SaveOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(order).Error
}

func (s *Store) SaveOrderItem(ctx context.Context, item *model.OrderItem) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

func (s *Store) SaveTable(ctx context.Context, table *model.Table) error {
	return s.db.WithContext(ctx).Save(table).Error
}

func (s *Store) DeleteOrderItem(ctx context.Context, item *model.OrderItem) error {
	return s.db.WithContext(ctx).Delete(&model.OrderItem{}, item.ID).Error
}

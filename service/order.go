package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant_manager/model"

	"github.com/google/uuid"
)

// OrderService drives the order lifecycle: CREATED -> CONFIRMED -> PAID, with
// CANCELLED reachable from CREATED only. Every operation is one unit of work:
// load, validate, mutate, persist inside a single transaction, serialized per
// order by a keyed mutex.
type OrderService struct {
	store      RecordStore
	kitchen    *KitchenService
	orderLocks *keyedMutex
	tableLocks *keyedMutex
}

func NewOrderService(store RecordStore, kitchen *KitchenService) *OrderService {
	return &OrderService{
		store:      store,
		kitchen:    kitchen,
		orderLocks: newKeyedMutex(),
		tableLocks: newKeyedMutex(),
	}
}

func newOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// Create opens an order on a free active table, claims the table and binds
// the discount currently in its validity window, if any.
func (s *OrderService) Create(ctx context.Context, tableId, waiterId uint) (*model.Order, error) {
	s.tableLocks.Lock(tableId)
	defer s.tableLocks.Unlock(tableId)

	var order *model.Order
	err := s.store.Atomically(ctx, func(tx RecordStore) error {
		table, err := tx.TableByID(ctx, tableId)
		if err != nil {
			return err
		}
		if table == nil {
			return fmt.Errorf("%w: invalid table ID %d", ErrInvalidReference, tableId)
		}
		if !table.IsActive {
			return fmt.Errorf("%w: table %d is not active", ErrPreconditionFailed, tableId)
		}
		if !table.IsFree {
			return fmt.Errorf("%w: table %d is not free", ErrPreconditionFailed, tableId)
		}

		order = &model.Order{
			PublicCode: newOrderCode(),
			Status:     model.OrderCreated,
			TableId:    tableId,
			WaiterId:   waiterId,
		}

		discount, err := tx.ActiveDiscountAt(ctx, time.Now())
		if err != nil {
			return err
		}
		if discount != nil {
			order.DiscountId = &discount.ID
		}

		table.IsFree = false
		if err := tx.SaveOrder(ctx, order); err != nil {
			return err
		}
		return tx.SaveTable(ctx, table)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// AddItem adds one unit of a menu item to an open order. A second add of the
// same menu item while the existing row is still NEW increments its quantity;
// once the row has left NEW a fresh row is created instead.
func (s *OrderService) AddItem(ctx context.Context, orderId, menuItemId uint, notes string) (*model.OrderItem, error) {
	s.orderLocks.Lock(orderId)
	defer s.orderLocks.Unlock(orderId)

	var result *model.OrderItem
	err := s.store.Atomically(ctx, func(tx RecordStore) error {
		order, err := tx.OrderByID(ctx, orderId)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: invalid order ID %d", ErrInvalidReference, orderId)
		}
		if order.Status != model.OrderCreated && order.Status != model.OrderConfirmed {
			return fmt.Errorf("%w: items can only be added while the order is 'Created' or 'Confirmed'", ErrInvalidState)
		}

		menuItem, err := tx.MenuItemByID(ctx, menuItemId)
		if err != nil {
			return err
		}
		if menuItem == nil {
			return fmt.Errorf("%w: invalid menu item ID %d", ErrInvalidReference, menuItemId)
		}
		if !menuItem.IsActive {
			return fmt.Errorf("%w: menu item %q is not active", ErrPreconditionFailed, menuItem.Name)
		}

		for i := range order.Items {
			existing := &order.Items[i]
			if existing.MenuItemId == menuItemId && existing.Status == model.ItemNew {
				existing.Quantity++
				if err := tx.SaveOrderItem(ctx, existing); err != nil {
					return err
				}
				result = existing
				return nil
			}
		}

		item := &model.OrderItem{
			OrderId:          orderId,
			MenuItemId:       menuItemId,
			Quantity:         1,
			PriceAtOrderTime: menuItem.Price,
			Notes:            notes,
			Status:           model.ItemNew,
		}
		if err := tx.SaveOrderItem(ctx, item); err != nil {
			return err
		}
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveItem deletes an item that has not been sent to the kitchen yet.
func (s *OrderService) RemoveItem(ctx context.Context, orderId, orderItemId uint) error {
	s.orderLocks.Lock(orderId)
	defer s.orderLocks.Unlock(orderId)

	return s.store.Atomically(ctx, func(tx RecordStore) error {
		order, err := tx.OrderByID(ctx, orderId)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: invalid order ID %d", ErrInvalidReference, orderId)
		}
		if order.Status != model.OrderCreated && order.Status != model.OrderConfirmed {
			return fmt.Errorf("%w: items can only be removed while the order is 'Created' or 'Confirmed'", ErrInvalidState)
		}

		item, err := tx.OrderItemByID(ctx, orderItemId)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: invalid order item ID %d", ErrInvalidReference, orderItemId)
		}
		if item.OrderId != orderId {
			return fmt.Errorf("%w: order item %d does not belong to order %d", ErrInvalidReference, orderItemId, orderId)
		}
		if item.Status != model.ItemNew {
			return fmt.Errorf("%w: only items with status 'New' can be removed", ErrInvalidState)
		}
		return tx.DeleteOrderItem(ctx, item)
	})
}

// Confirm sends every NEW item to the kitchen and marks the order CONFIRMED.
// Items with zero preparation time go straight to READY and never touch the
// queue. Re-confirming is a no-op for items already past NEW, so the call is
// safe to retry. Snapshots are pushed only after the transaction commits, so a
// rollback never leaves a ghost entry on the queue.
func (s *OrderService) Confirm(ctx context.Context, orderId uint) error {
	s.orderLocks.Lock(orderId)
	defer s.orderLocks.Unlock(orderId)

	var started []model.OrderItem
	err := s.store.Atomically(ctx, func(tx RecordStore) error {
		order, err := tx.OrderByID(ctx, orderId)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: invalid order ID %d", ErrInvalidReference, orderId)
		}
		if !order.Status.CanTransition(model.OrderConfirmed) {
			return fmt.Errorf("%w: order confirmation is only allowed for orders with status 'Created' or 'Confirmed'", ErrInvalidState)
		}

		now := time.Now()
		started = started[:0]
		for i := range order.Items {
			item := &order.Items[i]
			if item.Status != model.ItemNew {
				continue
			}
			if item.MenuItem.PrepTime() > 0 {
				item.Status = model.ItemStarted
				item.StartedAt = &now
				if err := tx.SaveOrderItem(ctx, item); err != nil {
					return err
				}
				started = append(started, *item)
			} else {
				item.Status = model.ItemReady
				item.StartedAt = &now
				item.CompletedAt = &now
				if err := tx.SaveOrderItem(ctx, item); err != nil {
					return err
				}
			}
		}

		order.Status = model.OrderConfirmed
		return tx.SaveOrder(ctx, order)
	})
	if err != nil {
		return err
	}

	for i := range started {
		if err := s.kitchen.Enqueue(ctx, &started[i], started[i].MenuItem.Name); err != nil {
			return err
		}
	}
	return nil
}

// Pay settles a confirmed order. Items still cooking block the payment;
// untouched NEW items are cancelled as never ordered, READY items are served
// with the bill. The table is released.
func (s *OrderService) Pay(ctx context.Context, orderId uint) (*model.Order, error) {
	s.orderLocks.Lock(orderId)
	defer s.orderLocks.Unlock(orderId)

	var paid *model.Order
	err := s.store.Atomically(ctx, func(tx RecordStore) error {
		order, err := tx.OrderByID(ctx, orderId)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: invalid order ID %d", ErrInvalidReference, orderId)
		}
		if order.Status != model.OrderConfirmed {
			return fmt.Errorf("%w: confirm the order first", ErrInvalidState)
		}

		for i := range order.Items {
			if order.Items[i].Status == model.ItemStarted {
				return fmt.Errorf("%w: items not yet served", ErrPreconditionFailed)
			}
		}

		now := time.Now()
		for i := range order.Items {
			item := &order.Items[i]
			switch item.Status {
			case model.ItemNew:
				item.Status = model.ItemCancelled
			case model.ItemReady:
				item.Status = model.ItemServed
			default:
				continue
			}
			if err := tx.SaveOrderItem(ctx, item); err != nil {
				return err
			}
		}

		var discount *model.Discount
		if order.DiscountId != nil {
			discount, err = tx.DiscountByID(ctx, *order.DiscountId)
			if err != nil {
				return err
			}
		}
		total, discountAmount := Settle(order.Items, discount)
		order.TotalAmount = total
		order.DiscountAmount = discountAmount

		table, err := tx.TableByID(ctx, order.TableId)
		if err != nil {
			return err
		}
		if table != nil {
			table.IsFree = true
			if err := tx.SaveTable(ctx, table); err != nil {
				return err
			}
		}

		order.CompletedAt = &now
		order.Status = model.OrderPaid
		if err := tx.SaveOrder(ctx, order); err != nil {
			return err
		}
		paid = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paid, nil
}

// Cancel aborts an order that was never confirmed. All items are cancelled
// and the table is released.
func (s *OrderService) Cancel(ctx context.Context, orderId uint) error {
	s.orderLocks.Lock(orderId)
	defer s.orderLocks.Unlock(orderId)

	return s.store.Atomically(ctx, func(tx RecordStore) error {
		order, err := tx.OrderByID(ctx, orderId)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: invalid order ID %d", ErrInvalidReference, orderId)
		}
		if order.Status != model.OrderCreated {
			return fmt.Errorf("%w: order cancellation is only allowed for orders with status 'Created'", ErrInvalidState)
		}

		for i := range order.Items {
			item := &order.Items[i]
			if item.Status.Terminal() {
				continue
			}
			item.Status = model.ItemCancelled
			if err := tx.SaveOrderItem(ctx, item); err != nil {
				return err
			}
		}

		table, err := tx.TableByID(ctx, order.TableId)
		if err != nil {
			return err
		}
		if table != nil {
			table.IsFree = true
			if err := tx.SaveTable(ctx, table); err != nil {
				return err
			}
		}

		now := time.Now()
		order.CompletedAt = &now
		order.Status = model.OrderCancelled
		return tx.SaveOrder(ctx, order)
	})
}

// ServeItem hands a READY item to the guest. It is not gated by order status:
// a dish can be served whenever the kitchen is done with it.
func (s *OrderService) ServeItem(ctx context.Context, orderItemId uint) error {
	item, err := s.store.OrderItemByID(ctx, orderItemId)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: invalid order item ID %d", ErrInvalidReference, orderItemId)
	}

	s.orderLocks.Lock(item.OrderId)
	defer s.orderLocks.Unlock(item.OrderId)

	return s.store.Atomically(ctx, func(tx RecordStore) error {
		item, err := tx.OrderItemByID(ctx, orderItemId)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: invalid order item ID %d", ErrInvalidReference, orderItemId)
		}
		if item.Status != model.ItemReady {
			return fmt.Errorf("%w: only items with status 'Ready' can be served", ErrInvalidState)
		}
		item.Status = model.ItemServed
		return tx.SaveOrderItem(ctx, item)
	})
}

// Total is the pre-payment preview: the sum over all non-cancelled items with
// no discount applied. The final amount at Pay differs on purpose: it covers
// served items only and subtracts the bound discount.
func (s *OrderService) Total(ctx context.Context, orderId uint) (float64, error) {
	order, err := s.store.OrderByID(ctx, orderId)
	if err != nil {
		return 0, err
	}
	if order == nil {
		return 0, fmt.Errorf("%w: order %d", ErrNotFound, orderId)
	}

	var total float64
	for i := range order.Items {
		if order.Items[i].Status == model.ItemCancelled {
			continue
		}
		total += order.Items[i].PriceAtOrderTime * float64(order.Items[i].Quantity)
	}
	return total, nil
}

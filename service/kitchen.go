package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"restaurant_manager/model"
)

// KitchenService implements the preparation queue protocol: snapshots of
// started items go onto a single shared list, the kitchen reads the list
// best-effort, and completion reconciles the database first and the queue
// second.
type KitchenService struct {
	store RecordStore
	queue KitchenQueue
}

func NewKitchenService(store RecordStore, queue KitchenQueue) *KitchenService {
	return &KitchenService{store: store, queue: queue}
}

// Enqueue appends a snapshot of the item to the tail of the queue.
func (s *KitchenService) Enqueue(ctx context.Context, item *model.OrderItem, menuItemName string) error {
	snapshot := model.KitchenItem{
		Id:           item.ID,
		OrderId:      item.OrderId,
		MenuItemId:   item.MenuItemId,
		MenuItemName: menuItemName,
		Quantity:     item.Quantity,
		Notes:        item.Notes,
		Status:       item.Status,
		StartedAt:    item.StartedAt,
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return s.queue.Push(ctx, payload)
}

// Queue returns the current snapshot list. A snapshot that fails to
// deserialize is logged and skipped; it never fails the whole read.
func (s *KitchenService) Queue(ctx context.Context) ([]model.KitchenItem, error) {
	entries, err := s.queue.Entries(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]model.KitchenItem, 0, len(entries))
	for _, entry := range entries {
		var item model.KitchenItem
		if err := json.Unmarshal([]byte(entry), &item); err != nil {
			log.Printf("kitchen: skipping unreadable queue snapshot: %v", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// MarkReady records that the kitchen finished an item: the database row moves
// to READY, then the matching snapshot is filtered out of the queue. Unreadable
// snapshots are kept in place rather than dropped.
func (s *KitchenService) MarkReady(ctx context.Context, orderItemId uint) error {
	err := s.store.Atomically(ctx, func(tx RecordStore) error {
		item, err := tx.OrderItemByID(ctx, orderItemId)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w: invalid order item ID %d", ErrInvalidReference, orderItemId)
		}
		if item.Status != model.ItemStarted {
			return fmt.Errorf("%w: order item %d is not being prepared", ErrInvalidState, orderItemId)
		}

		now := time.Now()
		item.Status = model.ItemReady
		item.CompletedAt = &now
		return tx.SaveOrderItem(ctx, item)
	})
	if err != nil {
		return err
	}

	return s.removeSnapshot(ctx, orderItemId)
}

func (s *KitchenService) removeSnapshot(ctx context.Context, orderItemId uint) error {
	_, err := s.queue.Remove(ctx, func(entry string) bool {
		var item model.KitchenItem
		if err := json.Unmarshal([]byte(entry), &item); err != nil {
			log.Printf("kitchen: keeping unreadable queue snapshot: %v", err)
			return false
		}
		return item.Id == orderItemId
	})
	return err
}

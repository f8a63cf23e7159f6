package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedItem(store *memStore, orderId, menuItemId uint, notes string) *model.OrderItem {
	now := time.Now()
	item := &model.OrderItem{
		OrderId:          orderId,
		MenuItemId:       menuItemId,
		Quantity:         1,
		PriceAtOrderTime: 10,
		Notes:            notes,
		Status:           model.ItemStarted,
		StartedAt:        &now,
	}
	store.SaveOrderItem(context.Background(), item)
	return item
}

func TestEnqueueSnapshotRoundTrip(t *testing.T) {
	store, _, _, kitchen := newTestServices()
	ctx := context.Background()

	item := startedItem(store, 7, 3, "extra spicy")
	require.NoError(t, kitchen.Enqueue(ctx, item, "Curry"))

	snapshots, err := kitchen.Queue(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)

	snapshot := snapshots[0]
	assert.Equal(t, item.ID, snapshot.Id)
	assert.Equal(t, uint(7), snapshot.OrderId)
	assert.Equal(t, uint(3), snapshot.MenuItemId)
	assert.Equal(t, "Curry", snapshot.MenuItemName)
	assert.Equal(t, 1, snapshot.Quantity)
	assert.Equal(t, "extra spicy", snapshot.Notes)
	assert.Equal(t, model.ItemStarted, snapshot.Status)
	require.NotNil(t, snapshot.StartedAt)
}

func TestQueueSkipsUnreadableSnapshots(t *testing.T) {
	store, queue, _, kitchen := newTestServices()
	ctx := context.Background()

	item := startedItem(store, 1, 1, "")
	require.NoError(t, kitchen.Enqueue(ctx, item, "Soup"))
	require.NoError(t, queue.Push(ctx, []byte("{not json")))

	snapshots, err := kitchen.Queue(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, item.ID, snapshots[0].Id)
}

func TestMarkReadyUpdatesItemAndRemovesSnapshot(t *testing.T) {
	store, queue, _, kitchen := newTestServices()
	ctx := context.Background()

	first := startedItem(store, 1, 1, "")
	second := startedItem(store, 1, 2, "")
	require.NoError(t, kitchen.Enqueue(ctx, first, "Soup"))
	require.NoError(t, kitchen.Enqueue(ctx, second, "Steak"))

	require.NoError(t, kitchen.MarkReady(ctx, first.ID))

	reloaded, err := store.OrderItemByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ItemReady, reloaded.Status)
	require.NotNil(t, reloaded.CompletedAt)

	snapshots, err := kitchen.Queue(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, second.ID, snapshots[0].Id)

	entries, err := queue.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMarkReadyKeepsUnreadableSnapshots(t *testing.T) {
	store, queue, _, kitchen := newTestServices()
	ctx := context.Background()

	require.NoError(t, queue.Push(ctx, []byte("garbage")))
	item := startedItem(store, 1, 1, "")
	require.NoError(t, kitchen.Enqueue(ctx, item, "Soup"))

	require.NoError(t, kitchen.MarkReady(ctx, item.ID))

	entries, err := queue.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "garbage", entries[0])
}

func TestMarkReadyWithoutSnapshotStillSucceeds(t *testing.T) {
	store, queue, _, kitchen := newTestServices()
	ctx := context.Background()

	item := startedItem(store, 1, 1, "")

	require.NoError(t, kitchen.MarkReady(ctx, item.ID))

	reloaded, err := store.OrderItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ItemReady, reloaded.Status)

	entries, err := queue.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// A snapshot pushed while a removal is rewriting the list must survive the
// rewrite.
func TestConcurrentEnqueueSurvivesMarkReady(t *testing.T) {
	for i := 0; i < 100; i++ {
		store, _, _, kitchen := newTestServices()
		ctx := context.Background()

		finished := startedItem(store, 1, 1, "")
		require.NoError(t, kitchen.Enqueue(ctx, finished, "Soup"))
		incoming := startedItem(store, 1, 2, "")

		errs := make(chan error, 2)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs <- kitchen.MarkReady(ctx, finished.ID)
		}()
		go func() {
			defer wg.Done()
			errs <- kitchen.Enqueue(ctx, incoming, "Steak")
		}()
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		snapshots, err := kitchen.Queue(ctx)
		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Equal(t, incoming.ID, snapshots[0].Id)
	}
}

func TestMarkReadyStateChecks(t *testing.T) {
	store, _, _, kitchen := newTestServices()
	ctx := context.Background()

	err := kitchen.MarkReady(ctx, 999)
	assert.ErrorIs(t, err, ErrInvalidReference)

	item := &model.OrderItem{OrderId: 1, MenuItemId: 1, Quantity: 1, Status: model.ItemNew}
	store.SaveOrderItem(ctx, item)

	err = kitchen.MarkReady(ctx, item.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	// Already done: marking again is rejected, the queue no longer holds it.
	done := startedItem(store, 1, 2, "")
	require.NoError(t, kitchen.MarkReady(ctx, done.ID))
	err = kitchen.MarkReady(ctx, done.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderClaimsTableAndBindsDiscount(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	now := time.Now()
	discount := store.addDiscount(10, now.Add(-time.Hour), now.Add(time.Hour), true)

	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, model.OrderCreated, order.Status)
	assert.True(t, strings.HasPrefix(order.PublicCode, "ORD-"))
	require.NotNil(t, order.DiscountId)
	assert.Equal(t, discount.ID, *order.DiscountId)

	reloaded, err := store.TableByID(ctx, table.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsFree)
}

func TestCreateOrderWithoutActiveDiscount(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	now := time.Now()
	store.addDiscount(10, now.Add(-2*time.Hour), now.Add(-time.Hour), true)
	store.addDiscount(20, now.Add(-time.Hour), now.Add(time.Hour), false)

	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)
	assert.Nil(t, order.DiscountId)
}

func TestCreateOrderBindsEarliestOverlappingDiscount(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	now := time.Now()
	earlier := store.addDiscount(5, now.Add(-3*time.Hour), now.Add(time.Hour), true)
	store.addDiscount(15, now.Add(-time.Hour), now.Add(2*time.Hour), true)

	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, order.DiscountId)
	assert.Equal(t, earlier.ID, *order.DiscountId)
}

func TestCreateOrderTableChecks(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	_, err := orders.Create(ctx, 999, 1)
	assert.ErrorIs(t, err, ErrInvalidReference)

	occupied := store.addTable(false, true)
	_, err = orders.Create(ctx, occupied.ID, 1)
	assert.ErrorIs(t, err, ErrPreconditionFailed)

	inactive := store.addTable(true, false)
	_, err = orders.Create(ctx, inactive.ID, 1)
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

func TestAddItemIncrementsExistingNewRow(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	soup := store.addMenuItem("Soup", 6.50, 600, true)
	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	first, err := orders.AddItem(ctx, order.ID, soup.ID, "no salt")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)
	assert.Equal(t, 6.50, first.PriceAtOrderTime)

	second, err := orders.AddItem(ctx, order.ID, soup.ID, "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Quantity)

	reloaded, err := store.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
}

func TestAddItemAfterConfirmCreatesNewRow(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	soup := store.addMenuItem("Soup", 6.50, 600, true)
	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	first, err := orders.AddItem(ctx, order.ID, soup.ID, "")
	require.NoError(t, err)
	require.NoError(t, orders.Confirm(ctx, order.ID))

	second, err := orders.AddItem(ctx, order.ID, soup.ID, "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, model.ItemNew, second.Status)
	assert.Equal(t, 1, second.Quantity)
}

func TestAddItemRejections(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	inactive := store.addMenuItem("Retired dish", 12, 300, false)
	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	_, err = orders.AddItem(ctx, 999, 1, "")
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = orders.AddItem(ctx, order.ID, 999, "")
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = orders.AddItem(ctx, order.ID, inactive.ID, "")
	assert.ErrorIs(t, err, ErrPreconditionFailed)

	require.NoError(t, orders.Confirm(ctx, order.ID))
	_, err = orders.Pay(ctx, order.ID)
	require.NoError(t, err)

	_, err = orders.AddItem(ctx, order.ID, inactive.ID, "")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRemoveItemOnlyWhileNew(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	soup := store.addMenuItem("Soup", 6.50, 600, true)
	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	item, err := orders.AddItem(ctx, order.ID, soup.ID, "")
	require.NoError(t, err)

	require.NoError(t, orders.RemoveItem(ctx, order.ID, item.ID))
	reloaded, err := store.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Items)

	item, err = orders.AddItem(ctx, order.ID, soup.ID, "")
	require.NoError(t, err)
	require.NoError(t, orders.Confirm(ctx, order.ID))

	err = orders.RemoveItem(ctx, order.ID, item.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRemoveItemFromAnotherOrder(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	soup := store.addMenuItem("Soup", 6.50, 600, true)
	first, err := orders.Create(ctx, store.addTable(true, true).ID, 1)
	require.NoError(t, err)
	second, err := orders.Create(ctx, store.addTable(true, true).ID, 1)
	require.NoError(t, err)

	item, err := orders.AddItem(ctx, first.ID, soup.ID, "")
	require.NoError(t, err)

	err = orders.RemoveItem(ctx, second.ID, item.ID)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestConfirmFastPathForZeroPrepItems(t *testing.T) {
	store, queue, orders, _ := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	cola := store.addMenuItem("Cola", 2.50, 0, true)
	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	item, err := orders.AddItem(ctx, order.ID, cola.ID, "")
	require.NoError(t, err)
	_, err = orders.AddItem(ctx, order.ID, cola.ID, "")
	require.NoError(t, err)

	require.NoError(t, orders.Confirm(ctx, order.ID))

	reloaded, err := store.OrderItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ItemReady, reloaded.Status)
	assert.Equal(t, 2, reloaded.Quantity)
	require.NotNil(t, reloaded.StartedAt)
	require.NotNil(t, reloaded.CompletedAt)

	entries, err := queue.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	reloadedOrder, err := store.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirmed, reloadedOrder.Status)
}

func TestConfirmEnqueuesPrepItemsOnce(t *testing.T) {
	store, _, orders, kitchen := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	steak := store.addMenuItem("Steak", 24, 1200, true)
	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	item, err := orders.AddItem(ctx, order.ID, steak.ID, "medium rare")
	require.NoError(t, err)

	require.NoError(t, orders.Confirm(ctx, order.ID))

	snapshots, err := kitchen.Queue(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, item.ID, snapshots[0].Id)
	assert.Equal(t, order.ID, snapshots[0].OrderId)
	assert.Equal(t, "Steak", snapshots[0].MenuItemName)
	assert.Equal(t, "medium rare", snapshots[0].Notes)
	assert.Equal(t, model.ItemStarted, snapshots[0].Status)

	// Re-confirming must not send the item again.
	require.NoError(t, orders.Confirm(ctx, order.ID))
	snapshots, err = kitchen.Queue(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshots, 1)
}

// When the confirming unit of work fails to persist, nothing may reach the
// queue: snapshots go out only after the commit.
func TestConfirmPersistFailureLeavesQueueUntouched(t *testing.T) {
	store, queue, orders, _ := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	steak := store.addMenuItem("Steak", 24, 1200, true)
	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	_, err = orders.AddItem(ctx, order.ID, steak.ID, "")
	require.NoError(t, err)

	store.failSaveOrder = errors.New("connection reset")
	err = orders.Confirm(ctx, order.ID)
	require.Error(t, err)

	entries, err := queue.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConfirmRejectedOnClosedOrder(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	order, err := orders.Create(ctx, store.addTable(true, true).ID, 1)
	require.NoError(t, err)
	require.NoError(t, orders.Cancel(ctx, order.ID))

	err = orders.Confirm(ctx, order.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestPayRequiresConfirmation(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	order, err := orders.Create(ctx, store.addTable(true, true).ID, 1)
	require.NoError(t, err)

	_, err = orders.Pay(ctx, order.ID)
	require.ErrorIs(t, err, ErrInvalidState)
	assert.Contains(t, err.Error(), "confirm the order first")
}

func TestPayBlockedWhileItemsAreCooking(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	steak := store.addMenuItem("Steak", 24, 1200, true)
	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	_, err = orders.AddItem(ctx, order.ID, steak.ID, "")
	require.NoError(t, err)
	require.NoError(t, orders.Confirm(ctx, order.ID))

	_, err = orders.Pay(ctx, order.ID)
	require.ErrorIs(t, err, ErrPreconditionFailed)
	assert.Contains(t, err.Error(), "items not yet served")
}

func TestPaySettlesOrder(t *testing.T) {
	store, _, orders, kitchen := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	now := time.Now()
	store.addDiscount(10, now.Add(-time.Hour), now.Add(time.Hour), true)
	steak := store.addMenuItem("Steak", 24, 1200, true)
	cola := store.addMenuItem("Cola", 2.50, 0, true)

	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	steakItem, err := orders.AddItem(ctx, order.ID, steak.ID, "")
	require.NoError(t, err)
	_, err = orders.AddItem(ctx, order.ID, cola.ID, "")
	require.NoError(t, err)
	require.NoError(t, orders.Confirm(ctx, order.ID))
	require.NoError(t, kitchen.MarkReady(ctx, steakItem.ID))

	// Ordered but never confirmed, so it must be cancelled at payment.
	forgotten, err := orders.AddItem(ctx, order.ID, cola.ID, "")
	require.NoError(t, err)

	paid, err := orders.Pay(ctx, order.ID)
	require.NoError(t, err)

	// 24 + 2.50 served, 10% off.
	assert.InDelta(t, 23.85, paid.TotalAmount, 0.001)
	assert.InDelta(t, 2.65, paid.DiscountAmount, 0.001)
	assert.Equal(t, model.OrderPaid, paid.Status)
	require.NotNil(t, paid.CompletedAt)

	reloaded, err := store.OrderItemByID(ctx, forgotten.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ItemCancelled, reloaded.Status)

	served, err := store.OrderItemByID(ctx, steakItem.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ItemServed, served.Status)

	freedTable, err := store.TableByID(ctx, table.ID)
	require.NoError(t, err)
	assert.True(t, freedTable.IsFree)
}

func TestCancelOnlyFromCreated(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	soup := store.addMenuItem("Soup", 6.50, 600, true)
	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	item, err := orders.AddItem(ctx, order.ID, soup.ID, "")
	require.NoError(t, err)

	require.NoError(t, orders.Cancel(ctx, order.ID))

	reloaded, err := store.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderCancelled, reloaded.Status)
	require.NotNil(t, reloaded.CompletedAt)

	cancelledItem, err := store.OrderItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ItemCancelled, cancelledItem.Status)

	freedTable, err := store.TableByID(ctx, table.ID)
	require.NoError(t, err)
	assert.True(t, freedTable.IsFree)

	_, err = orders.Pay(ctx, order.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCancelRejectedAfterConfirmation(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	order, err := orders.Create(ctx, store.addTable(true, true).ID, 1)
	require.NoError(t, err)
	require.NoError(t, orders.Confirm(ctx, order.ID))

	err = orders.Cancel(ctx, order.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestServeItemRequiresReady(t *testing.T) {
	store, _, orders, kitchen := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	steak := store.addMenuItem("Steak", 24, 1200, true)
	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	item, err := orders.AddItem(ctx, order.ID, steak.ID, "")
	require.NoError(t, err)

	err = orders.ServeItem(ctx, item.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, orders.Confirm(ctx, order.ID))
	require.NoError(t, kitchen.MarkReady(ctx, item.ID))
	require.NoError(t, orders.ServeItem(ctx, item.ID))

	reloaded, err := store.OrderItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ItemServed, reloaded.Status)

	err = orders.ServeItem(ctx, 999)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestTotalPreviewIgnoresDiscountAndCancelledItems(t *testing.T) {
	store, _, orders, _ := newTestServices()
	ctx := context.Background()

	table := store.addTable(true, true)
	now := time.Now()
	store.addDiscount(50, now.Add(-time.Hour), now.Add(time.Hour), true)
	soup := store.addMenuItem("Soup", 6.50, 600, true)
	cola := store.addMenuItem("Cola", 2.50, 0, true)

	order, err := orders.Create(ctx, table.ID, 1)
	require.NoError(t, err)

	_, err = orders.AddItem(ctx, order.ID, soup.ID, "")
	require.NoError(t, err)
	colaItem, err := orders.AddItem(ctx, order.ID, cola.ID, "")
	require.NoError(t, err)
	require.NoError(t, orders.RemoveItem(ctx, order.ID, colaItem.ID))

	total, err := orders.Total(ctx, order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 6.50, total, 0.001)

	// Cancelled items drop out of the preview entirely.
	require.NoError(t, orders.Cancel(ctx, order.ID))
	total, err = orders.Total(ctx, order.ID)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = orders.Total(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

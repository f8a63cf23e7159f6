package model

import "time"

type OrderItemStatus string

const (
	ItemNew       OrderItemStatus = "NEW"
	ItemStarted   OrderItemStatus = "STARTED"
	ItemReady     OrderItemStatus = "READY"
	ItemServed    OrderItemStatus = "SERVED"
	ItemCancelled OrderItemStatus = "CANCELLED"
)

// orderItemTransitions is the closed transition table for OrderItem.Status.
// NEW -> READY is the fast path for items with zero preparation time.
// SERVED and CANCELLED are terminal.
var orderItemTransitions = map[OrderItemStatus][]OrderItemStatus{
	ItemNew:     {ItemStarted, ItemReady, ItemCancelled},
	ItemStarted: {ItemReady, ItemCancelled},
	ItemReady:   {ItemServed, ItemCancelled},
}

func (s OrderItemStatus) CanTransition(to OrderItemStatus) bool {
	for _, next := range orderItemTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s OrderItemStatus) Terminal() bool {
	return s == ItemServed || s == ItemCancelled
}

type OrderItem struct {
	DTO
	// OrderId is a back-reference for lookup only; the order owns the item.
	OrderId          uint            `gorm:"not null;index" json:"orderId"`
	MenuItemId       uint            `gorm:"not null;index" json:"menuItemId"`
	Quantity         int             `gorm:"not null;default:1" json:"quantity"`
	PriceAtOrderTime float64         `gorm:"type:decimal(10,2);not null" json:"priceAtOrderTime"`
	Notes            string          `gorm:"type:text" json:"notes"`
	Status           OrderItemStatus `gorm:"size:20;not null;default:'NEW'" json:"status"`
	StartedAt        *time.Time      `json:"startedAt,omitempty"`
	CompletedAt      *time.Time      `json:"completedAt,omitempty"`

	MenuItem MenuItem `gorm:"foreignKey:MenuItemId" json:"-"`
}

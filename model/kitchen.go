package model

import "time"

// KitchenItem is the serialized snapshot pushed onto the preparation queue
// when an item starts cooking. The kitchen works off copies, never live
// records; completion is reconciled back against the database.
type KitchenItem struct {
	Id           uint            `json:"id"`
	OrderId      uint            `json:"orderId"`
	MenuItemId   uint            `json:"menuItemId"`
	MenuItemName string          `json:"menuItemName"`
	Quantity     int             `json:"quantity"`
	Notes        string          `json:"notes"`
	Status       OrderItemStatus `json:"status"`
	StartedAt    *time.Time      `json:"startedAt"`
}

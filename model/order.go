package model

import "time"

type OrderStatus string

const (
	OrderCreated   OrderStatus = "CREATED"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPaid      OrderStatus = "PAID"
	OrderCancelled OrderStatus = "CANCELLED"
)

// orderTransitions is the closed transition table for Order.Status.
// Anything not listed here is rejected. CONFIRMED -> CONFIRMED makes
// re-confirming an order a tolerated no-op.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderCreated:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderConfirmed, OrderPaid},
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderPaid || s == OrderCancelled
}

type Order struct {
	DTO
	PublicCode     string      `gorm:"uniqueIndex;size:20" json:"publicCode"`
	TotalAmount    float64     `gorm:"type:decimal(10,2)" json:"totalAmount"`
	DiscountAmount float64     `gorm:"type:decimal(10,2)" json:"discountAmount"`
	Status         OrderStatus `gorm:"size:20;not null;default:'CREATED'" json:"status"`
	CompletedAt    *time.Time  `json:"completedAt,omitempty"`

	TableId    uint  `gorm:"not null;index" json:"tableId"`
	WaiterId   uint  `gorm:"not null;index" json:"waiterId"`
	DiscountId *uint `json:"discountId,omitempty"`

	Table    Table     `gorm:"foreignKey:TableId" json:"-"`
	Waiter   Employee  `gorm:"foreignKey:WaiterId" json:"-"`
	Discount *Discount `gorm:"foreignKey:DiscountId" json:"-"`

	// Order owns its items; removing the order removes them.
	Items []OrderItem `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type CreateOrderInput struct {
	TableId  uint `json:"tableId" validate:"required,gt=0"`
	WaiterId uint `json:"waiterId" validate:"required,gt=0"`
}

type AddOrderItemInput struct {
	MenuItemId uint   `json:"menuItemId" validate:"required,gt=0"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
}

type FilterOrderInput struct {
	Pagination
	OrderId   uint        `json:"orderId" validate:"omitempty,gt=0"`
	TableId   uint        `json:"tableId" validate:"omitempty,gt=0"`
	WaiterId  uint        `json:"waiterId" validate:"omitempty,gt=0"`
	Status    OrderStatus `json:"status" validate:"omitempty,oneof=CREATED CONFIRMED PAID CANCELLED"`
	StartDate *time.Time  `json:"startDate" validate:"omitempty"`
	EndDate   *time.Time  `json:"endDate" validate:"omitempty"`
}

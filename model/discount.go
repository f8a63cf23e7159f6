package model

import "time"

type Discount struct {
	DTO
	DiscountPercent float64   `gorm:"type:decimal(5,2);not null" json:"discountPercent"`
	StartTime       time.Time `gorm:"not null" json:"startTime"`
	EndTime         time.Time `gorm:"not null" json:"endTime"`
	IsActive        bool      `gorm:"not null;default:true" json:"isActive"`
}

// ValidAt reports whether the validity window contains the given moment.
// It deliberately ignores IsActive: orders that bound the discount while it
// was active keep honoring it at settlement.
func (d *Discount) ValidAt(at time.Time) bool {
	return !d.StartTime.After(at) && d.EndTime.After(at)
}

type CreateDiscountInput struct {
	DiscountPercent float64   `json:"discountPercent" validate:"required,gt=0,lte=100"`
	StartTime       time.Time `json:"startTime" validate:"required"`
	EndTime         time.Time `json:"endTime" validate:"required"`
}

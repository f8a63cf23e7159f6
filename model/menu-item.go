package model

import "time"

type MenuItem struct {
	DTO
	Name            string  `gorm:"uniqueIndex;not null" json:"name"`
	Slug            string  `gorm:"uniqueIndex;size:120" json:"slug"`
	Description     string  `gorm:"type:text" json:"description"`
	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	PrepTimeSeconds int     `gorm:"not null;default:0" json:"prepTimeSeconds"`
	IsActive        bool    `gorm:"not null;default:true" json:"isActive"`

	CategoryId uint     `gorm:"not null;index" json:"categoryId"`
	Category   Category `gorm:"foreignKey:CategoryId" json:"-"`
}

// PrepTime is zero for items the kitchen never sees (drinks, desserts
// straight from the counter), which bypass the preparation queue.
func (m *MenuItem) PrepTime() time.Duration {
	return time.Duration(m.PrepTimeSeconds) * time.Second
}

type CreateMenuItemInput struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Description     string  `json:"description" validate:"omitempty,max=1000"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	PrepTimeSeconds int     `json:"prepTimeSeconds" validate:"gte=0"`
	CategoryId      uint    `json:"categoryId" validate:"required,gt=0"`
}

type UpdateMenuItemInput struct {
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Description     string  `json:"description" validate:"omitempty,max=1000"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	PrepTimeSeconds int     `json:"prepTimeSeconds" validate:"gte=0"`
	CategoryId      uint    `json:"categoryId" validate:"required,gt=0"`
}

package model

type Category struct {
	DTO
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	IsActive bool   `gorm:"not null;default:true" json:"isActive"`

	MenuItems []MenuItem `gorm:"foreignKey:CategoryId" json:"-"`
}

type CreateCategoryInput struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

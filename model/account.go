package model

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
}

type Employee struct {
	DTO
	Name      string `gorm:"not null" json:"name"`
	AccountId *uint  `json:"accountId,omitempty"`

	Account *Account `gorm:"foreignKey:AccountId" json:"-"`
	Orders  []Order  `gorm:"foreignKey:WaiterId" json:"-"`
}

type CreateWaiterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

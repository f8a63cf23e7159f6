package model

type Table struct {
	DTO
	NumberOfSeats int  `gorm:"not null" json:"numberOfSeats"`
	IsFree        bool `gorm:"not null;default:true" json:"isFree"`
	IsActive      bool `gorm:"not null;default:true" json:"isActive"`
}

type CreateTableInput struct {
	NumberOfSeats int `json:"numberOfSeats" validate:"required,gte=1,lte=50"`
}

package database

import (
	"log"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "123456cn"
	}
	accounts := []model.Account{
		{Username: "Administration", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
		{Username: "kitchen", Password: hashPassword, Active: true, Role: constants.ROLE_KITCHEN},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	waiters := []model.Employee{
		{Name: "Alice"},
		{Name: "Bob"},
	}
	for _, waiter := range waiters {
		if err := db.Where(model.Employee{Name: waiter.Name}).FirstOrCreate(&waiter).Error; err != nil {
			log.Println("failed to seed data for waiter:", waiter.Name, "error:", err)
		}
	}

	tables := []model.Table{
		{NumberOfSeats: 2},
		{NumberOfSeats: 2},
		{NumberOfSeats: 4},
		{NumberOfSeats: 6},
	}
	var tableCount int64
	db.Model(&model.Table{}).Count(&tableCount)
	if tableCount == 0 {
		if err := db.Create(&tables).Error; err != nil {
			log.Println("failed to seed tables:", err)
		}
	}

	categories := []model.Category{
		{Name: "Starters"},
		{Name: "Mains"},
		{Name: "Drinks"},
		{Name: "Desserts"},
	}
	for i := range categories {
		if err := db.Where(model.Category{Name: categories[i].Name}).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed category:", categories[i].Name, "error:", err)
		}
	}

	byName := map[string]uint{}
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	menuItems := []model.MenuItem{
		{Name: "Tomato Soup", Price: 5.50, PrepTimeSeconds: 600, CategoryId: byName["Starters"]},
		{Name: "Caesar Salad", Price: 7.00, PrepTimeSeconds: 420, CategoryId: byName["Starters"]},
		{Name: "Margherita Pizza", Price: 11.00, PrepTimeSeconds: 900, CategoryId: byName["Mains"]},
		{Name: "Grilled Salmon", Price: 16.50, PrepTimeSeconds: 1200, CategoryId: byName["Mains"]},
		{Name: "Espresso", Price: 2.50, PrepTimeSeconds: 0, CategoryId: byName["Drinks"]},
		{Name: "Lemonade", Price: 3.00, PrepTimeSeconds: 0, CategoryId: byName["Drinks"]},
		{Name: "Cheesecake", Price: 6.00, PrepTimeSeconds: 0, CategoryId: byName["Desserts"]},
	}
	for _, item := range menuItems {
		item.Slug = slug.Make(item.Name)
		if err := db.Where(model.MenuItem{Name: item.Name}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed menu item:", item.Name, "error:", err)
		}
	}

	var discountCount int64
	db.Model(&model.Discount{}).Count(&discountCount)
	if discountCount == 0 {
		discount := model.Discount{
			DiscountPercent: 10,
			StartTime:       time.Now(),
			EndTime:         time.Now().Add(30 * 24 * time.Hour),
			IsActive:        true,
		}
		if err := db.Create(&discount).Error; err != nil {
			log.Println("failed to seed discount:", err)
		}
	}
}

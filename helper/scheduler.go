package helper

import (
	"log"
	"time"

	"restaurant_manager/database"
	"restaurant_manager/model"

	"github.com/robfig/cron/v3"
)

var scheduler *cron.Cron

// StartDiscountScheduler deactivates discounts whose validity window has
// passed, every 5 minutes. Orders that bound such a discount while it was
// active still settle with it; deactivation only stops new bindings.
func StartDiscountScheduler() {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := scheduler.AddFunc("*/5 * * * *", expireDiscounts)
	if err != nil {
		log.Printf("failed to start discount scheduler: %v", err)
		return
	}

	scheduler.Start()
	log.Println("Discount scheduler started (every 5 minutes)")
}

func expireDiscounts() {
	now := time.Now()
	result := database.DB.Model(&model.Discount{}).
		Where("is_active = ? AND end_time < ?", true, now).
		Update("is_active", false)

	if result.Error != nil {
		log.Printf("failed to expire discounts: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Deactivated %d expired discounts", result.RowsAffected)
	}
}

func StopDiscountScheduler() {
	if scheduler != nil {
		scheduler.Stop()
	}
}

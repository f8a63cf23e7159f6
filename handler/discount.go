package handler

import (
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetActiveDiscounts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	page := c.QueryInt("page", 1)
	now := time.Now()

	query := database.DB.Model(&model.Discount{}).
		Where("is_active = ? AND start_time < ? AND end_time > ?", true, now, now)

	var totalCount int64
	query.Count(&totalCount)

	var discounts []model.Discount
	if err := utils.ApplyPagination(query, &limit, &page).
		Order("start_time ASC").
		Find(&discounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.PagedResponse(c, discounts, &limit, &page, totalCount)
}

func CreateDiscount(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(*model.CreateDiscountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	// One active discount per period: overlapping windows are rejected so
	// resolution at order creation stays unambiguous.
	var overlapping int64
	database.DB.Model(&model.Discount{}).
		Where("is_active = ? AND end_time > ?", true, time.Now()).
		Where("start_time < ? AND end_time > ?", input.EndTime, input.StartTime).
		Count(&overlapping)
	if overlapping > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Discount for the given period already exists", nil)
	}

	discount := model.Discount{
		DiscountPercent: input.DiscountPercent,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		IsActive:        true,
	}
	if err := database.DB.Create(&discount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Discount created successfully", discount)
}

// EndDiscount deactivates a discount. Orders that bound it earlier still
// settle with it at payment.
func EndDiscount(c *fiber.Ctx) error {
	discountId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var discount model.Discount
	if err := database.DB.Where("id = ? AND is_active = ?", discountId, true).First(&discount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Discount not found or already ended", err)
	}

	discount.IsActive = false
	if err := database.DB.Save(&discount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Discount ended successfully", true)
}

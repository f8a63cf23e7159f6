package handler

import (
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func GetTodayRevenue(c *fiber.Ctx) error {
	var revenue float64
	err := database.DB.Model(&model.Order{}).
		Where("status = ? AND created_at >= ?", model.OrderPaid, startOfToday()).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Revenue has been retrieved successfully", revenue)
}

func GetAverageCheck(c *fiber.Ctx) error {
	var avgCheck float64
	err := database.DB.Model(&model.Order{}).
		Where("status = ? AND created_at >= ?", model.OrderPaid, startOfToday()).
		Select("COALESCE(AVG(total_amount), 0)").
		Scan(&avgCheck).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Average check has been retrieved successfully", avgCheck)
}

func GetOrderCount(c *fiber.Ctx) error {
	var count int64
	err := database.DB.Model(&model.Order{}).
		Where("status = ? AND created_at >= ?", model.OrderPaid, startOfToday()).
		Count(&count).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Order count has been retrieved successfully", count)
}

type popularMenuItem struct {
	MenuItemId   uint   `json:"menuItemId"`
	MenuItemName string `json:"menuItemName"`
	OrdersCount  int    `json:"ordersCount"`
}

func GetPopularMenuItems(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	page := c.QueryInt("page", 1)

	query := database.DB.Model(&model.OrderItem{}).
		Select("order_items.menu_item_id AS menu_item_id, menu_items.name AS menu_item_name, SUM(order_items.quantity) AS orders_count").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("order_items.status = ? AND order_items.started_at >= ?", model.ItemServed, startOfToday()).
		Group("order_items.menu_item_id, menu_items.name").
		Order("orders_count DESC")

	var totalCount int64
	countQuery := database.DB.Model(&model.OrderItem{}).
		Where("status = ? AND started_at >= ?", model.ItemServed, startOfToday()).
		Distinct("menu_item_id")
	countQuery.Count(&totalCount)

	var popular []popularMenuItem
	if err := utils.ApplyPagination(query, &limit, &page).Scan(&popular).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.PagedResponse(c, popular, &limit, &page, totalCount)
}

func GetAverageOrderDuration(c *fiber.Ctx) error {
	var orderTimes []model.Order
	err := database.DB.
		Where("status = ? AND created_at >= ? AND completed_at IS NOT NULL", model.OrderPaid, startOfToday()).
		Select("created_at", "completed_at").
		Find(&orderTimes).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if len(orderTimes) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, "No orders found for average calculation", "0s")
	}

	var total time.Duration
	for _, order := range orderTimes {
		total += order.CompletedAt.Sub(order.CreatedAt)
	}
	avg := total / time.Duration(len(orderTimes))

	return utils.SuccessResponse(c, fiber.StatusOK, "Avg order time fetched successfully", avg.Round(time.Second).String())
}

type waiterKpi struct {
	EmployeeId   uint    `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	TotalRevenue float64 `json:"totalRevenue"`
}

func GetWaiterRating(c *fiber.Ctx) error {
	var kpis []waiterKpi
	err := database.DB.Model(&model.Order{}).
		Select("employees.id AS employee_id, employees.name AS employee_name, SUM(orders.total_amount) AS total_revenue").
		Joins("JOIN employees ON employees.id = orders.waiter_id").
		Where("orders.status = ? AND orders.created_at >= ?", model.OrderPaid, startOfToday()).
		Group("employees.id, employees.name").
		Order("total_revenue DESC").
		Scan(&kpis).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Waiter rating fetched successfully", kpis)
}

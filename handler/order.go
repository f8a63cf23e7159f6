package handler

import (
	"encoding/base64"
	"fmt"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(*model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	order, err := orders.Create(c.Context(), input.TableId, input.WaiterId)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Order created successfully", order)
}

func GetOrders(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(*model.FilterOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	query := database.DB.Model(&model.Order{})
	if input.StartDate != nil && input.EndDate != nil {
		query = query.Where("created_at >= ? AND created_at <= ?", input.StartDate, input.EndDate)
	}
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}
	if input.OrderId > 0 {
		query = query.Where("id = ?", input.OrderId)
	}
	if input.TableId > 0 {
		query = query.Where("table_id = ?", input.TableId)
	}
	if input.WaiterId > 0 {
		query = query.Where("waiter_id = ?", input.WaiterId)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var list []model.Order
	if err := utils.ApplyPagination(query, input.Limit, input.Page).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.PagedResponse(c, list, input.Limit, input.Page, totalCount)
}

// GetActiveOrderByTable is what a waiter opens when walking up to a table:
// the newest order that has not been settled yet, items included.
func GetActiveOrderByTable(c *fiber.Ctx) error {
	tableId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var order model.Order
	err := database.DB.
		Preload("Items", "status <> ?", model.ItemCancelled).
		Where("table_id = ? AND status IN ?", tableId, []model.OrderStatus{model.OrderCreated, model.OrderConfirmed}).
		Order("created_at DESC").
		First(&order).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No open order for this table", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Order fetched successfully", order)
}

func GetOrderById(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var order model.Order
	err := database.DB.
		Preload("Items", "status <> ?", model.ItemCancelled).
		First(&order, orderId).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Order fetched successfully", order)
}

func AddOrderItem(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("input").(*model.AddOrderItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	item, err := orders.AddItem(c.Context(), orderId, input.MenuItemId, input.Notes)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Order item added", item)
}

func RemoveOrderItem(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	itemId, err := c.ParamsInt("orderItemId")
	if err != nil || itemId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	if err := orders.RemoveItem(c.Context(), orderId, uint(itemId)); err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Order item removed", true)
}

func ConfirmOrder(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := orders.Confirm(c.Context(), orderId); err != nil {
		return serviceError(c, err)
	}
	BroadcastKitchenQueue()
	return utils.SuccessResponse(c, fiber.StatusOK, "Order confirmed", true)
}

func PayOrder(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	order, err := orders.Pay(c.Context(), orderId)
	if err != nil {
		return serviceError(c, err)
	}

	// Optional receipt email, best effort.
	if email := c.Query("email"); email != "" {
		sendReceipt(order, email)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Order paid", order)
}

func sendReceipt(order *model.Order, email string) {
	var items []model.OrderItem
	if err := database.DB.Preload("MenuItem").
		Where("order_id = ? AND status = ?", order.ID, model.ItemServed).
		Find(&items).Error; err != nil {
		return
	}

	lines := make([]utils.ReceiptLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, utils.ReceiptLine{
			Name:     item.MenuItem.Name,
			Quantity: item.Quantity,
			Price:    item.PriceAtOrderTime * float64(item.Quantity),
		})
	}

	paidAt := ""
	if order.CompletedAt != nil {
		paidAt = order.CompletedAt.Format("02/01/2006 15:04")
	}
	utils.SendReceiptEmail(email, utils.ReceiptData{
		OrderCode:      order.PublicCode,
		Lines:          lines,
		TotalAmount:    order.TotalAmount,
		DiscountAmount: order.DiscountAmount,
		PaidAt:         paidAt,
	})
}

func CancelOrder(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := orders.Cancel(c.Context(), orderId); err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Order cancelled", true)
}

func ServeOrderItem(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := orders.ServeItem(c.Context(), itemId); err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Order item served", true)
}

func GetOrderTotal(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	total, err := orders.Total(c.Context(), orderId)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Total calculated successfully", total)
}

// GetOrderReceipt renders a paid order with its served items and a QR code of
// the public order code.
func GetOrderReceipt(c *fiber.Ctx) error {
	orderId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var order model.Order
	if err := database.DB.
		Preload("Items", "status = ?", model.ItemServed).
		Preload("Items.MenuItem").
		First(&order, orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if order.Status != model.OrderPaid {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Receipt is only available for paid orders", nil)
	}

	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 400)
	if err == nil {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	lines := []fiber.Map{}
	for _, item := range order.Items {
		lines = append(lines, fiber.Map{
			"name":     item.MenuItem.Name,
			"quantity": item.Quantity,
			"amount":   fmt.Sprintf("%.2f", item.PriceAtOrderTime*float64(item.Quantity)),
		})
	}

	paidAt := ""
	if order.CompletedAt != nil {
		paidAt = order.CompletedAt.Format(time.RFC3339)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Receipt fetched successfully", fiber.Map{
		"orderCode":      order.PublicCode,
		"items":          lines,
		"totalAmount":    order.TotalAmount,
		"discountAmount": order.DiscountAmount,
		"paidAt":         paidAt,
		"qrCode":         qrBase64,
	})
}

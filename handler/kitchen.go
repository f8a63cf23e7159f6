package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetKitchenQueue returns the pending preparation snapshots in queue order.
func GetKitchenQueue(c *fiber.Ctx) error {
	items, err := kitchen.Queue(c.Context())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Queue fetched successfully", items)
}

// MarkOrderItemReady is the kitchen callback: the dish is done, the item
// moves to READY and its snapshot leaves the queue.
func MarkOrderItemReady(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := kitchen.MarkReady(c.Context(), itemId); err != nil {
		return serviceError(c, err)
	}
	BroadcastKitchenQueue()
	return utils.SuccessResponse(c, fiber.StatusOK, "OrderItem has been marked as 'Ready' successfully", true)
}

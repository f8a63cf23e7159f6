package handler

import (
	"errors"

	"restaurant_manager/service"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	orders  *service.OrderService
	kitchen *service.KitchenService
)

// Init wires the lifecycle services the handlers run on. Called once from
// main after the database and redis connections are up.
func Init(store service.RecordStore, queue service.KitchenQueue) {
	kitchen = service.NewKitchenService(store, queue)
	orders = service.NewOrderService(store, kitchen)
}

// serviceError maps the lifecycle error taxonomy onto HTTP codes:
// unknown references and illegal transitions are 400, missing records on
// read-only queries are 404, everything else is a persistence failure.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidReference),
		errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrPreconditionFailed):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error(), nil)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", err)
	}
}

package validate

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateDiscount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDiscountInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if !input.EndTime.After(input.StartTime) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("endTime must be after startTime"))
		}

		c.Locals("input", &input)
		return c.Next()
	}
}

func CreateWaiter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateWaiterInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("input", &input)
		return c.Next()
	}
}

package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetWaiters(c *fiber.Ctx) error {
	var waiters []model.Employee
	if err := database.DB.Order("name ASC").Find(&waiters).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Waiters fetched successfully", waiters)
}

// CreateWaiter creates the employee together with a WAITER login account.
func CreateWaiter(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(*model.CreateWaiterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	existing, err := helper.GetAccountByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Username already taken", nil)
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	var waiter model.Employee
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		account := model.Account{
			Username: input.Username,
			Password: hash,
			Role:     constants.ROLE_WAITER,
			Active:   true,
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		waiter = model.Employee{Name: input.Name, AccountId: &account.ID}
		return tx.Create(&waiter).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Waiter created successfully", waiter)
}

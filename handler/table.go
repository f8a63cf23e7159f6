package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetTables(c *fiber.Ctx) error {
	db := database.DB

	query := db.Model(&model.Table{})
	if c.QueryBool("onlyActive") {
		query = query.Where("is_active = ?", true)
	}
	if c.QueryBool("onlyFree") {
		query = query.Where("is_free = ?", true)
	}

	var tables []model.Table
	if err := query.Order("id ASC").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Tables fetched successfully", tables)
}

func CreateTable(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(*model.CreateTableInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var table model.Table
	copier.Copy(&table, input)
	table.IsFree = true
	table.IsActive = true

	if err := database.DB.Create(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Table created successfully", table)
}

// DeleteTable deactivates the table; occupied tables keep their open order.
func DeleteTable(c *fiber.Ctx) error {
	tableId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var table model.Table
	if err := database.DB.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid table ID", err)
	}

	table.IsActive = false
	if err := database.DB.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Table deleted successfully", true)
}

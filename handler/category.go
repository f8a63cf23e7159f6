package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetCategories(c *fiber.Ctx) error {
	var categories []model.Category
	if err := database.DB.Where("is_active = ?", true).Order("name ASC").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Categories fetched successfully", categories)
}

func CreateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(*model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var existing model.Category
	if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Category with this name already exists", nil)
	}

	category := model.Category{Name: input.Name, IsActive: true}
	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Category created successfully", category)
}

func DeleteCategory(c *fiber.Ctx) error {
	categoryId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var category model.Category
	if err := database.DB.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID", err)
	}

	category.IsActive = false
	if err := database.DB.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Category deleted successfully", true)
}

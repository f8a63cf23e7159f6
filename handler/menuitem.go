package handler

import (
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func CreateMenuItem(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(*model.CreateMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	db := database.DB

	var categoryCount int64
	db.Model(&model.Category{}).Where("id = ?", input.CategoryId).Count(&categoryCount)
	if categoryCount == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID", nil)
	}

	var existing model.MenuItem
	if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "MenuItem with this name already exists", nil)
	}

	var menuItem model.MenuItem
	copier.Copy(&menuItem, input)
	menuItem.Slug = helper.GenerateUniqueMenuItemSlug(db, input.Name)
	menuItem.IsActive = true

	if err := db.Create(&menuItem).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Menu item created successfully", menuItem)
}

func UpdateMenuItem(c *fiber.Ctx) error {
	menuItemId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	input, ok := c.Locals("input").(*model.UpdateMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	db := database.DB

	var menuItem model.MenuItem
	if err := db.First(&menuItem, menuItemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	var categoryCount int64
	db.Model(&model.Category{}).Where("id = ?", input.CategoryId).Count(&categoryCount)
	if categoryCount == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID", nil)
	}

	// Slug follows a rename; orders snapshot prices so existing items are
	// unaffected by a price change.
	if menuItem.Name != input.Name {
		menuItem.Slug = helper.GenerateUniqueMenuItemSlug(db, input.Name)
	}
	copier.Copy(&menuItem, input)

	if err := db.Save(&menuItem).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Menu item updated successfully", menuItem)
}

func DeleteMenuItem(c *fiber.Ctx) error {
	menuItemId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var menuItem model.MenuItem
	if err := database.DB.First(&menuItem, menuItemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	menuItem.IsActive = false
	if err := database.DB.Save(&menuItem).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Menu item deleted successfully (marked as inactive)", true)
}

func GetMenuItemsByCategory(c *fiber.Ctx) error {
	categoryId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	db := database.DB

	var categoryCount int64
	db.Model(&model.Category{}).Where("id = ?", categoryId).Count(&categoryCount)
	if categoryCount == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID", nil)
	}

	limit := c.QueryInt("limit", 10)
	page := c.QueryInt("page", 1)

	query := db.Model(&model.MenuItem{}).
		Where("category_id = ? AND is_active = ?", categoryId, true)

	var totalCount int64
	query.Count(&totalCount)

	var menuItems []model.MenuItem
	if err := utils.ApplyPagination(query, &limit, &page).
		Order("name ASC").
		Find(&menuItems).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.PagedResponse(c, menuItems, &limit, &page, totalCount)
}

func SearchMenuItems(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Search name cannot be empty", nil)
	}

	limit := c.QueryInt("limit", 10)
	page := c.QueryInt("page", 1)

	query := database.DB.Model(&model.MenuItem{}).
		Where("name ILIKE ? AND is_active = ?", "%"+name+"%", true)

	var totalCount int64
	query.Count(&totalCount)

	var menuItems []model.MenuItem
	if err := utils.ApplyPagination(query, &limit, &page).
		Order("name ASC").
		Find(&menuItems).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.PagedResponse(c, menuItems, &limit, &page, totalCount)
}

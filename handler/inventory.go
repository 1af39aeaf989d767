package handler

import (
	"errors"
	"fmt"

	"repair_shop/constants"
	"repair_shop/database"
	"repair_shop/helper"
	"repair_shop/model"
	"repair_shop/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func CreateInventory(c *fiber.Ctx) error {
	db := database.DB

	partInput, ok := c.Locals("inputCreateInventory").(model.CreateInventoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	newPart := new(model.Inventory)
	copier.Copy(&newPart, &partInput)
	newPart.Sku = helper.GenerateUniquePartSku(db, partInput.Name)

	if err := db.Create(&newPart).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newPart)
}

func GetInventory(c *fiber.Ctx) error {
	db := database.DB

	var parts model.Inventories
	if err := db.Order("id ASC").Find(&parts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, parts)
}

func GetInventoryById(c *fiber.Ctx) error {
	db := database.DB

	partId := c.Locals("inputId").(uint)
	var part model.Inventory
	if err := db.First(&part, partId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_PART, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, part)
}

func GetInventoryBySku(c *fiber.Ctx) error {
	db := database.DB

	sku := c.Params("sku")
	var part model.Inventory
	if err := db.Where("sku = ?", sku).First(&part).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_PART, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, part)
}

func UpdateInventory(c *fiber.Ctx) error {
	db := database.DB

	partId := c.Locals("inputId").(uint)
	partInput, ok := c.Locals("inputCreateInventory").(model.CreateInventoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	var part model.Inventory
	if err := db.First(&part, partId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_PART, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	copier.Copy(&part, &partInput)
	if err := db.Save(&part).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, part)
}

func PatchInventory(c *fiber.Ctx) error {
	db := database.DB

	partId := c.Locals("inputId").(uint)
	partInput, ok := c.Locals("inputPatchInventory").(model.PatchInventoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	var part model.Inventory
	if err := db.First(&part, partId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_PART, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if partInput.Name == nil && partInput.Price == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FIELDS_TO_UPDATE, nil)
	}

	if partInput.Name != nil {
		part.Name = *partInput.Name
	}
	if partInput.Price != nil {
		part.Price = *partInput.Price
	}

	if err := db.Save(&part).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, part)
}

func DeleteInventory(c *fiber.Ctx) error {
	db := database.DB

	partId := c.Locals("inputId").(uint)
	var part model.Inventory
	if err := db.First(&part, partId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_PART, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Where("inventory_id = ?", partId).Delete(&model.TicketInventory{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := db.Delete(&part).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.MessageResponse(c, fiber.StatusOK, fmt.Sprintf("Part id %d deleted", partId))
}

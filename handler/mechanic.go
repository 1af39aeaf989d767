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

func CreateMechanic(c *fiber.Ctx) error {
	db := database.DB

	mechanicInput, ok := c.Locals("inputCreateMechanic").(model.CreateMechanicInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	emailTaken, err := helper.CheckByEmailMechanic(mechanicInput.Email, nil)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if emailTaken {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMAIL_EXISTS, nil)
	}

	hash, err := helper.HashPassword(mechanicInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newMechanic := new(model.Mechanic)
	copier.Copy(&newMechanic, &mechanicInput)
	newMechanic.Password = hash

	if err := db.Create(&newMechanic).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newMechanic)
}

func GetMechanics(c *fiber.Ctx) error {
	db := database.DB

	var mechanics model.Mechanics
	query := utils.ApplyPagination(db.Model(&model.Mechanic{}).Order("id ASC"), c.Query("page"), c.Query("per_page"))
	if err := query.Find(&mechanics).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, mechanics)
}

func GetMechanicById(c *fiber.Ctx) error {
	db := database.DB

	mechanicId := c.Locals("inputId").(uint)
	var mechanic model.Mechanic
	if err := db.First(&mechanic, mechanicId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_MECHANIC, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, mechanic)
}

// requireSelf enforces that the authenticated mechanic only touches their
// own record. The authorization gate has already checked the role.
func requireSelf(c *fiber.Ctx, targetId uint) error {
	callerId := c.Locals("mechanicId").(uint)
	if callerId != targetId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWN_RECORD, nil)
	}
	return nil
}

func UpdateMechanic(c *fiber.Ctx) error {
	db := database.DB

	mechanicId := c.Locals("inputId").(uint)
	if err := requireSelf(c, mechanicId); err != nil {
		return err
	}

	mechanicInput, ok := c.Locals("inputCreateMechanic").(model.CreateMechanicInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	var mechanic model.Mechanic
	if err := db.First(&mechanic, mechanicId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_MECHANIC, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	emailTaken, err := helper.CheckByEmailMechanic(mechanicInput.Email, &mechanicId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if emailTaken {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMAIL_EXISTS, nil)
	}

	copier.Copy(&mechanic, &mechanicInput)
	hash, err := helper.HashPassword(mechanicInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	mechanic.Password = hash

	if err := db.Save(&mechanic).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, mechanic)
}

func PatchMechanic(c *fiber.Ctx) error {
	db := database.DB

	mechanicId := c.Locals("inputId").(uint)
	if err := requireSelf(c, mechanicId); err != nil {
		return err
	}

	mechanicInput, ok := c.Locals("inputPatchMechanic").(model.PatchMechanicInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	var mechanic model.Mechanic
	if err := db.First(&mechanic, mechanicId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_MECHANIC, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if mechanicInput.Name == nil && mechanicInput.Email == nil && mechanicInput.Phone == nil &&
		mechanicInput.Salary == nil && mechanicInput.Password == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FIELDS_TO_UPDATE, nil)
	}

	if mechanicInput.Name != nil {
		mechanic.Name = *mechanicInput.Name
	}
	if mechanicInput.Email != nil {
		emailTaken, err := helper.CheckByEmailMechanic(*mechanicInput.Email, &mechanicId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if emailTaken {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMAIL_EXISTS, nil)
		}
		mechanic.Email = *mechanicInput.Email
	}
	if mechanicInput.Phone != nil {
		mechanic.Phone = *mechanicInput.Phone
	}
	if mechanicInput.Salary != nil {
		mechanic.Salary = *mechanicInput.Salary
	}
	if mechanicInput.Password != nil {
		hash, err := helper.HashPassword(*mechanicInput.Password)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		mechanic.Password = hash
	}

	if err := db.Save(&mechanic).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, mechanic)
}

func DeleteMechanic(c *fiber.Ctx) error {
	db := database.DB

	mechanicId := c.Locals("inputId").(uint)
	if err := requireSelf(c, mechanicId); err != nil {
		return err
	}

	var mechanic model.Mechanic
	if err := db.First(&mechanic, mechanicId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_MECHANIC, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Model(&mechanic).Association("Tickets").Clear(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := db.Delete(&mechanic).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.MessageResponse(c, fiber.StatusOK, fmt.Sprintf("Mechanic id: %d, successfully deleted.", mechanicId))
}

func MechanicLogin(c *fiber.Ctx) error {
	loginInput, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	mechanic, err := helper.GetMechanicByEmail(loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if mechanic == nil || !helper.CheckPasswordHash(loginInput.Password, mechanic.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, nil)
	}

	token, err := helper.GenerateToken(mechanic.ID, constants.ROLE_MECHANIC)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AuthToken: token})
}

// PopularMechanics lists every mechanic, busiest first. Ties keep id order
// so the result is deterministic.
func PopularMechanics(c *fiber.Ctx) error {
	db := database.DB

	var mechanics model.Mechanics
	err := db.Model(&model.Mechanic{}).
		Joins("LEFT JOIN ticket_mechanic ON ticket_mechanic.mechanic_id = mechanics.id").
		Group("mechanics.id").
		Order("COUNT(ticket_mechanic.ticket_id) DESC, mechanics.id ASC").
		Find(&mechanics).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, mechanics)
}

// SearchMechanics matches the name substring case-sensitively.
func SearchMechanics(c *fiber.Ctx) error {
	db := database.DB

	name := c.Query("name")
	var mechanics model.Mechanics
	query := db.Model(&model.Mechanic{}).Order("id ASC")
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if err := query.Find(&mechanics).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, mechanics)
}

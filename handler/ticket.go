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
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

func CreateTicket(c *fiber.Ctx) error {
	db := database.DB

	ticketInput, ok := c.Locals("inputCreateTicket").(model.CreateTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	// A ticket must reference an existing customer.
	var customer model.Customer
	if err := db.First(&customer, ticketInput.CustomerId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_CUSTOMER, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newTicket := new(model.Ticket)
	copier.Copy(&newTicket, &ticketInput)

	if err := db.Create(&newTicket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newTicket)
}

func GetTickets(c *fiber.Ctx) error {
	db := database.DB

	var tickets model.Tickets
	if err := db.Order("id ASC").Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tickets)
}

func GetTicketMechanics(c *fiber.Ctx) error {
	ticketId := c.Locals("inputId").(uint)

	mechanics, err := helper.TicketMechanics(ticketId)
	if err != nil {
		if errors.Is(err, helper.ErrTicketNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_TICKET, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, mechanics)
}

func AssignMechanic(c *fiber.Ctx) error {
	ticketId := c.Locals("ticketId").(uint)
	mechanicId := c.Locals("mechanicId").(uint)

	ticket, err := helper.AssignMechanic(ticketId, mechanicId)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrTicketNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_TICKET, err)
		case errors.Is(err, helper.ErrMechanicNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_MECHANIC, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func RemoveMechanic(c *fiber.Ctx) error {
	ticketId := c.Locals("ticketId").(uint)
	mechanicId := c.Locals("mechanicId").(uint)

	mechanic, err := helper.RemoveMechanic(ticketId, mechanicId)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrTicketNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_TICKET, err)
		case errors.Is(err, helper.ErrMechanicNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_MECHANIC, err)
		case errors.Is(err, helper.ErrNotAssigned):
			return utils.ErrorResponse(c, fiber.StatusNotFound,
				fmt.Sprintf("Mechanic %d: %s is not assigned to ticket %d.", mechanicId, mechanic.Name, ticketId), err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.MessageResponse(c, fiber.StatusOK,
		fmt.Sprintf("Successfully removed mechanic %d: %s from ticket %d.", mechanicId, mechanic.Name, ticketId))
}

// BulkEditMechanics applies add_mechanic_ids then remove_mechanic_ids in one
// request. Unknown ids in either list are skipped, not an error.
func BulkEditMechanics(c *fiber.Ctx) error {
	ticketId := c.Locals("inputId").(uint)
	editInput, ok := c.Locals("inputBulkEditMechanics").(model.BulkEditMechanicsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	ticket, err := helper.BulkEditMechanics(ticketId, editInput.AddMechanicIds, editInput.RemoveMechanicIds)
	if err != nil {
		if errors.Is(err, helper.ErrTicketNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_TICKET, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func PatchTicket(c *fiber.Ctx) error {
	db := database.DB

	ticketId := c.Locals("inputId").(uint)
	ticketInput, ok := c.Locals("inputPatchTicket").(model.PatchTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	var ticket model.Ticket
	if err := db.First(&ticket, ticketId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_TICKET, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if ticketInput.Vin == nil && ticketInput.TicketDate == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FIELDS_TO_UPDATE, nil)
	}

	if ticketInput.Vin != nil {
		ticket.Vin = *ticketInput.Vin
	}
	if ticketInput.TicketDate != nil {
		ticket.TicketDate = *ticketInput.TicketDate
	}

	if err := db.Save(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func AddPart(c *fiber.Ctx) error {
	ticketId := c.Locals("inputId").(uint)
	partInput, ok := c.Locals("inputAddPart").(model.AddPartInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_LOCALS, nil)
	}

	quantity := 1
	if partInput.Quantity != nil {
		quantity = *partInput.Quantity
	}

	row, err := helper.AddPart(ticketId, partInput.InventoryId, quantity)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrTicketNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_TICKET, err)
		case errors.Is(err, helper.ErrPartNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_PART, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, row)
}

// MyTickets lists the tickets owned by the authenticated customer.
func MyTickets(c *fiber.Ctx) error {
	db := database.DB

	customerId := c.Locals("customerId").(uint)
	var tickets model.Tickets
	if err := db.Where("customer_id = ?", customerId).Order("id ASC").Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tickets)
}

// TicketQR renders a PNG QR code for the pickup desk.
func TicketQR(c *fiber.Ctx) error {
	db := database.DB

	ticketId := c.Locals("inputId").(uint)
	var ticket model.Ticket
	if err := db.First(&ticket, ticketId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_TICKET, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	png, err := qrcode.Encode(fmt.Sprintf("ticket:%d;vin:%s", ticket.ID, ticket.Vin), qrcode.Medium, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

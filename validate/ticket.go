package validate

import (
	"encoding/json"
	"fmt"

	"repair_shop/model"
	"repair_shop/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTicketInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationResponse(c, fieldMessages(err))
		}

		c.Locals("inputCreateTicket", input)
		return c.Next()
	}
}

func PatchTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		var input model.PatchTicketInput
		for field, value := range raw {
			var err error
			switch field {
			case "vin":
				err = json.Unmarshal(value, &input.Vin)
			case "ticket_date":
				err = json.Unmarshal(value, &input.TicketDate)
			default:
				return utils.ValidationResponse(c, map[string]string{field: "Unknown field."})
			}
			if err != nil {
				return utils.ValidationResponse(c, map[string]string{field: "Invalid value."})
			}
		}

		c.Locals("inputPatchTicket", input)
		return c.Next()
	}
}

func BulkEditMechanics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BulkEditMechanicsInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		c.Locals("inputBulkEditMechanics", input)
		return c.Next()
	}
}

func AddPart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AddPartInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationResponse(c, fieldMessages(err))
		}

		c.Locals("inputAddPart", input)
		return c.Next()
	}
}

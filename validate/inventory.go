package validate

import (
	"encoding/json"
	"fmt"

	"repair_shop/model"
	"repair_shop/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateInventory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateInventoryInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationResponse(c, fieldMessages(err))
		}

		c.Locals("inputCreateInventory", input)
		return c.Next()
	}
}

func PatchInventory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		var input model.PatchInventoryInput
		for field, value := range raw {
			var err error
			switch field {
			case "name":
				err = json.Unmarshal(value, &input.Name)
			case "price":
				err = json.Unmarshal(value, &input.Price)
			default:
				return utils.ValidationResponse(c, map[string]string{field: "Unknown field."})
			}
			if err != nil {
				return utils.ValidationResponse(c, map[string]string{field: "Invalid value."})
			}
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationResponse(c, fieldMessages(err))
		}

		c.Locals("inputPatchInventory", input)
		return c.Next()
	}
}

package validate

import (
	"encoding/json"
	"fmt"

	"repair_shop/model"
	"repair_shop/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateMechanic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMechanicInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationResponse(c, fieldMessages(err))
		}

		c.Locals("inputCreateMechanic", input)
		return c.Next()
	}
}

func PatchMechanic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		var input model.PatchMechanicInput
		for field, value := range raw {
			var err error
			switch field {
			case "name":
				err = json.Unmarshal(value, &input.Name)
			case "email":
				err = json.Unmarshal(value, &input.Email)
			case "phone":
				err = json.Unmarshal(value, &input.Phone)
			case "salary":
				err = json.Unmarshal(value, &input.Salary)
			case "password":
				err = json.Unmarshal(value, &input.Password)
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

		c.Locals("inputPatchMechanic", input)
		return c.Next()
	}
}

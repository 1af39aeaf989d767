package validate

import (
	"encoding/json"
	"fmt"

	"repair_shop/model"
	"repair_shop/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCustomerInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationResponse(c, fieldMessages(err))
		}

		c.Locals("inputCreateCustomer", input)
		return c.Next()
	}
}

// PatchCustomer parses a partial update by switching over recognized keys,
// rejecting anything it does not know about.
func PatchCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		var input model.PatchCustomerInput
		for field, value := range raw {
			var err error
			switch field {
			case "name":
				err = json.Unmarshal(value, &input.Name)
			case "email":
				err = json.Unmarshal(value, &input.Email)
			case "phone":
				err = json.Unmarshal(value, &input.Phone)
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

		c.Locals("inputPatchCustomer", input)
		return c.Next()
	}
}

func ChangePasswordCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CustomerChangePassword
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationResponse(c, fieldMessages(err))
		}

		c.Locals("inputChangePassword", input)
		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ForgotPasswordInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationResponse(c, fieldMessages(err))
		}

		c.Locals("inputForgotPassword", input)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ResetPasswordInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return utils.ValidationResponse(c, fieldMessages(err))
		}

		c.Locals("inputResetPassword", input)
		return c.Next()
	}
}

package validate

import (
	"errors"
	"fmt"
	"strconv"

	"repair_shop/constants"
	"repair_shop/model"
	"repair_shop/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldMessages flattens validator errors into the wire shape
// {"messages": {field: message}}.
func fieldMessages(err error) map[string]string {
	messages := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				messages[fe.Field()] = "Missing data for required field."
			case "email":
				messages[fe.Field()] = "Not a valid email address."
			case "min":
				messages[fe.Field()] = fmt.Sprintf("Shorter than minimum length %s.", fe.Param())
			case "gte":
				messages[fe.Field()] = fmt.Sprintf("Must be greater than or equal to %s.", fe.Param())
			default:
				messages[fe.Field()] = "Invalid value."
			}
		}
		return messages
	}
	messages["_schema"] = err.Error()
	return messages
}

// ParamId parses a numeric route parameter and stores it under localsKey.
func ParamId(param, localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value, err := strconv.Atoi(c.Params(param))
		if err != nil || value < 1 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals(localsKey, uint(value))

		return c.Next()
	}
}

// GetById parses a numeric route parameter and stores it as "inputId".
func GetById(key string) fiber.Handler {
	return ParamId(key, "inputId")
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}

		c.Locals("inputLogin", input)
		return c.Next()
	}
}

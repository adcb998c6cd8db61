package validate

import (
	"cinema_admin/constants"
	"cinema_admin/model"
	"cinema_admin/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const maxOrderCodeLength = 20

func GetOrderCode(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := strings.TrimSpace(c.Params(key))
		if code == "" || len(code) > maxOrderCodeLength {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("order code invalid"), key)
		}
		c.Locals("orderCode", code)
		return c.Next()
	}
}

func EmailTickets() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EmailTicketsInput
		if ok, err := bindBody(c, &input); !ok {
			return err
		}
		c.Locals("emailInput", input)
		return c.Next()
	}
}

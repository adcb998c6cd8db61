package validate

import (
	"cinema_admin/constants"
	"cinema_admin/helper"
	"cinema_admin/utils"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Lỗi trả về theo tên field JSON để frontend gắn vào ô nhập
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// "HH:MM"
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, _, err := helper.ParseClock(fl.Field().String())
		return err == nil
	})
	return v
}

// bindBody parse body rồi validate, lỗi thì trả luôn response 400
func bindBody(c *fiber.Ctx, input any) (bool, error) {
	if err := c.BodyParser(input); err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if err := validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return false, utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, fieldErrs[0].Field())
		}
		return false, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	return true, nil
}

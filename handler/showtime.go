package handler

import (
	"cinema_admin/constants"
	"cinema_admin/database"
	"cinema_admin/helper"
	"cinema_admin/metrics"
	"cinema_admin/model"
	"cinema_admin/utils"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func validationErrorResponse(c *fiber.Ctx, message string, err error) error {
	var ve *helper.ValidationError
	if errors.As(err, &ve) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, ve.Message, err, ve.Key)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
}

// GenerateShowtimeSlots tính các khung giờ chiếu trong ngày
func GenerateShowtimeSlots(c *fiber.Ctx) error {
	input := c.Locals("slotsInput").(model.GenerateSlotsInput)
	duration := c.Locals("movieDuration").(int)

	slots, err := helper.GenerateTimeSlots(input.FirstShowClock, duration, input.BufferMinutes, input.AdMinutes)
	if err != nil {
		return validationErrorResponse(c, constants.ERROR_GENERATE_SLOTS, err)
	}

	if duration <= 0 {
		duration = helper.DefaultMovieDurationMinutes
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"slots":       slots,
		"slotMinutes": duration + input.BufferMinutes + input.AdMinutes,
	})
}

func RemoveShowtimeSlot(c *fiber.Ctx) error {
	input := c.Locals("removeSlotInput").(model.RemoveSlotInput)

	slots, err := helper.RemoveTimeSlot(input.Slots, input.Index)
	if err != nil {
		return validationErrorResponse(c, constants.ERROR_GENERATE_SLOTS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"slots": slots})
}

// CreateShowtimeBatch nhân khung giờ với từng ngày trong khoảng rồi lưu một lần
func CreateShowtimeBatch(c *fiber.Ctx) error {
	input := c.Locals("batchInput").(model.CreateShowtimeBatchInput)

	records, err := helper.SubmitShowtimes(
		c.UserContext(),
		input.ShowtimeDraft,
		input.Slots,
		svc.Location,
		database.CreateShowtimes(database.DB, input.Format),
	)
	if err != nil {
		if !helper.IsValidationError(err) {
			svc.Log.Error("create showtime batch", zap.Error(err))
		}
		return validationErrorResponse(c, constants.ERROR_CREATE_SHOWTIME, err)
	}

	metrics.AddShowtimesCreated(len(records))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   fmt.Sprintf("Tạo thành công %d lịch chiếu", len(records)),
		"showtimes": records,
	})
}

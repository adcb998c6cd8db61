package validate

import (
	"cinema_admin/constants"
	"cinema_admin/database"
	"cinema_admin/model"
	"cinema_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func GenerateSlots() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.GenerateSlotsInput
		if ok, err := bindBody(c, &input); !ok {
			return err
		}

		// Có chọn phim thì lấy thời lượng thật của phim
		duration := 0
		if input.MovieId != 0 {
			movie, err := database.FindMovie(database.DB, input.MovieId)
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NOT_FOUND_MOVIE, err, "movieId")
			}
			duration = movie.Duration
		}

		c.Locals("slotsInput", input)
		c.Locals("movieDuration", duration)
		return c.Next()
	}
}

func RemoveSlot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RemoveSlotInput
		if ok, err := bindBody(c, &input); !ok {
			return err
		}
		c.Locals("removeSlotInput", input)
		return c.Next()
	}
}

func CreateShowtimeBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShowtimeBatchInput
		if ok, err := bindBody(c, &input); !ok {
			return err
		}

		// Thiếu phim/phòng để helper trả lỗi theo key, ở đây chỉ kiểm tra tồn tại
		if input.MovieId != 0 {
			movie, err := database.FindMovie(database.DB, input.MovieId)
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NOT_FOUND_MOVIE, err, "movieId")
			}
			if input.MovieDurationMinutes == 0 {
				input.MovieDurationMinutes = movie.Duration
			}
		}
		if input.RoomId != 0 {
			room, err := database.FindRoom(database.DB, input.RoomId)
			if err != nil || room.Status != "active" {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.NOT_FOUND_ROOM, err, "roomId")
			}
		}

		c.Locals("batchInput", input)
		return c.Next()
	}
}

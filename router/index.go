package router

import (
	"cinema_admin/handler"
	"cinema_admin/middleware"
	"cinema_admin/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, jwtSecret string) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", middleware.Protected(jwtSecret))

	showtime := v1.Group("/showtime")
	showtime.Post("/slots", validate.GenerateSlots(), handler.GenerateShowtimeSlots)
	showtime.Post("/slots/remove", validate.RemoveSlot(), handler.RemoveShowtimeSlot)
	showtime.Post("/batch", validate.CreateShowtimeBatch(), handler.CreateShowtimeBatch)

	order := v1.Group("/order")
	order.Get("/:orderCode/tickets", validate.GetOrderCode("orderCode"), handler.DownloadTickets)
	order.Post("/:orderCode/tickets/email", validate.GetOrderCode("orderCode"), validate.EmailTickets(), handler.EmailTickets)
}

package handler

import (
	"cinema_admin/constants"
	"cinema_admin/database"
	"cinema_admin/invoice"
	"cinema_admin/metrics"
	"cinema_admin/model"
	"cinema_admin/utils"
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ticketsPDF lấy file vé từ cache, chưa có thì render rồi lưu lại
func ticketsPDF(ctx context.Context, orderCode string) (*invoice.Document, error) {
	doc, err := svc.TicketCache.Get(ctx, orderCode)
	if err != nil {
		svc.Log.Warn("read ticket cache", zap.String("order", orderCode), zap.Error(err))
	}
	if doc != nil {
		metrics.IncCacheHit()
		return doc, nil
	}
	if svc.TicketCache.Enabled() {
		metrics.IncCacheMiss()
	}

	bundle, err := database.LoadInvoice(database.DB, orderCode, svc.Location, svc.Log)
	if err != nil {
		return nil, err
	}
	doc, err = svc.Renderer.Render(bundle.Data, bundle.Movie, bundle.Showtime, bundle.Seats)
	if err != nil {
		return nil, err
	}

	if err := svc.TicketCache.Set(ctx, orderCode, doc); err != nil {
		svc.Log.Warn("write ticket cache", zap.String("order", orderCode), zap.Error(err))
	}
	return doc, nil
}

func ticketsErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, database.ErrOrderNotFound):
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.NOT_FOUND_ORDER, err, "orderCode")
	case errors.Is(err, invoice.ErrNoTickets):
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.ORDER_HAS_NO_TICKETS, err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_RENDER_TICKETS, err)
	}
}

// DownloadTickets trả file PDF vé của đơn, mỗi vé một trang.
// ?refresh=true bỏ file trong cache và render lại
func DownloadTickets(c *fiber.Ctx) error {
	orderCode := c.Locals("orderCode").(string)

	if c.QueryBool("refresh") {
		if err := svc.TicketCache.Invalidate(c.UserContext(), orderCode); err != nil {
			svc.Log.Warn("invalidate ticket cache", zap.String("order", orderCode), zap.Error(err))
		}
	}

	doc, err := ticketsPDF(c.UserContext(), orderCode)
	if err != nil {
		return ticketsErrorResponse(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, doc.FileName))
	return c.Status(fiber.StatusOK).Send(doc.Content)
}

func EmailTickets(c *fiber.Ctx) error {
	orderCode := c.Locals("orderCode").(string)
	input := c.Locals("emailInput").(model.EmailTicketsInput)

	doc, err := ticketsPDF(c.UserContext(), orderCode)
	if err != nil {
		return ticketsErrorResponse(c, err)
	}

	if svc.SendTickets == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.ERROR_SEND_EMAIL, errors.New("smtp not configured"))
	}
	if err := svc.SendTickets(input.Email, orderCode, doc.FileName, doc.Content); err != nil {
		svc.Log.Error("send tickets email", zap.String("order", orderCode), zap.Error(err))
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.ERROR_SEND_EMAIL, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":  "Đã gửi vé tới " + input.Email,
		"fileName": doc.FileName,
	})
}

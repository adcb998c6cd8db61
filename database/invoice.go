package database

import (
	"cinema_admin/model"
	"cinema_admin/utils"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const qrImageSize = 256

var ErrOrderNotFound = errors.New("order not found")

// InvoiceBundle dữ liệu đầu vào để in vé cho một đơn
type InvoiceBundle struct {
	Data     model.InvoiceData
	Movie    model.InvoiceMovie
	Showtime model.InvoiceShowtime
	Seats    []model.InvoiceSeat
	Email    string
}

// LoadInvoice gom đơn, vé, ghế, suất chiếu, phim, phòng và combo theo mã đơn.
// Vé chưa có mã thì dùng id. QR tạo lỗi thì bỏ trống để vé in chữ thay thế.
func LoadInvoice(db *gorm.DB, orderCode string, loc *time.Location, log *zap.Logger) (*InvoiceBundle, error) {
	var order model.Order
	err := db.
		Preload("Showtime.Movie").
		Preload("Showtime.Room").
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Preload("Tickets.Seat.SeatType").
		Preload("Combos", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Where("public_code = ?", orderCode).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderCode)
		}
		return nil, err
	}

	start := order.Showtime.StartTime
	if loc != nil {
		start = start.In(loc)
	}

	bundle := &InvoiceBundle{
		Data: model.InvoiceData{
			ID:             order.PublicCode,
			TotalAmount:    order.TotalAmount,
			DiscountAmount: order.DiscountAmount,
			CreatedAt:      order.CreatedAt,
		},
		Movie: model.InvoiceMovie{
			Title:           order.Showtime.Movie.Title,
			DurationMinutes: order.Showtime.Movie.Duration,
		},
		Showtime: model.InvoiceShowtime{
			StartTime: start,
			RoomName:  order.Showtime.Room.Name,
			Format:    order.Showtime.Format,
			DayType:   order.Showtime.DayType,
		},
		Email: order.Email,
	}

	for _, ticket := range order.Tickets {
		id := ticket.TicketCode
		if id == "" {
			id = fmt.Sprintf("%d", ticket.ID)
		}

		qr, err := utils.GenerateQRCodeDataURL(id, qrImageSize)
		if err != nil {
			log.Warn("generate ticket qr", zap.String("ticket", id), zap.Error(err))
			qr = ""
		}

		bundle.Data.Tickets = append(bundle.Data.Tickets, model.InvoiceTicket{ID: id, QRCode: qr})
		bundle.Seats = append(bundle.Seats, model.InvoiceSeat{
			TicketID:   id,
			SeatNumber: ticket.Seat.Label(),
			SeatType:   ticket.Seat.SeatType.DisplayName(),
			Price:      ticket.Price,
		})
	}

	for _, combo := range order.Combos {
		bundle.Data.Combos = append(bundle.Data.Combos, model.InvoiceCombo{
			Name:     combo.Name,
			Quantity: combo.Quantity,
			Price:    combo.Price,
		})
	}
	return bundle, nil
}

package model

import "time"

// InvoiceData dữ liệu đơn hàng để in vé (chỉ đọc)
type InvoiceData struct {
	ID             string          `json:"id"`
	TotalAmount    float64         `json:"totalAmount"`
	DiscountAmount float64         `json:"discountAmount"`
	CreatedAt      time.Time       `json:"createdAt"`
	Tickets        []InvoiceTicket `json:"tickets"`
	Combos         []InvoiceCombo  `json:"combos"`
}

type InvoiceTicket struct {
	ID     string `json:"id"`
	QRCode string `json:"qrCode"` // data:image/png;base64,... hoặc base64 thuần
}

type InvoiceCombo struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type InvoiceMovie struct {
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration"`
}

type InvoiceShowtime struct {
	StartTime time.Time `json:"startTime"`
	RoomName  string    `json:"roomName"`
	Format    string    `json:"format"`
	DayType   DayType   `json:"dayType"`
}

// InvoiceSeat ghế của một vé, nối với vé qua TicketID
type InvoiceSeat struct {
	TicketID   string  `json:"ticketId"`
	SeatNumber string  `json:"seatNumber"`
	SeatType   string  `json:"seatType"`
	Price      float64 `json:"price"`
}

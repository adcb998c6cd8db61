package model

import "time"

type Ticket struct {
	DTO
	Status     string    `gorm:"not null;default:'ISSUED'" json:"status"`
	TicketCode string    `gorm:"size:32;uniqueIndex" json:"ticketCode"`
	Price      float64   `gorm:"not null" json:"price"`
	IssuedAt   time.Time `json:"issuedAt"`
	ShowtimeId uint      `json:"showtimeId"`
	SeatId     uint      `json:"seatId"`
	OrderId    uint      `json:"orderId"`
	Seat       Seat      `gorm:"foreignKey:SeatId" json:"-"`
}

package model

import "time"

type Order struct {
	DTO
	PublicCode     string       `gorm:"unique;size:20" json:"publicCode"` // ORD-XXXXXX
	ShowtimeID     uint         `json:"showtimeId"`
	Showtime       Showtime     `json:"showtime"`
	TotalAmount    float64      `json:"totalAmount"`
	DiscountAmount float64      `json:"discountAmount"`
	Status         string       `json:"status"` // PENDING, PAID, CANCELLED, REFUNDED
	PaidAt         *time.Time   `json:"paidAt,omitempty"`
	Tickets        []Ticket     `gorm:"foreignKey:OrderId" json:"tickets"`
	Combos         []OrderCombo `gorm:"foreignKey:OrderId" json:"combos"`
	Email          string       `json:"email"`
}

// OrderCombo bắp nước/combo mua kèm đơn
type OrderCombo struct {
	DTO
	OrderId  uint    `gorm:"index" json:"orderId"`
	Name     string  `gorm:"not null" json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"` // đơn giá
}

type EmailTicketsInput struct {
	Email string `json:"email" validate:"required,email"`
}

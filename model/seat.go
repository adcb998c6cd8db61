package model

import "fmt"

type Seat struct {
	DTO
	Row        string   `gorm:"not null" validate:"required" json:"row"`          // e.g., "A", "B"
	Column     int      `gorm:"not null" validate:"required,min=1" json:"column"` // e.g., 1, 2
	RoomId     uint     `json:"RoomId"`
	Room       Room     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	SeatTypeId uint     `json:"seatTypeId"`
	SeatType   SeatType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"SeatType"`
}

func (s Seat) Label() string {
	return fmt.Sprintf("%s%d", s.Row, s.Column)
}

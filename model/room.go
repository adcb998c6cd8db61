package model

type Room struct {
	DTO
	Name       string `gorm:"not null" validate:"required" json:"name"`
	RoomNumber uint   `json:"roomNumber"`
	Status     string `gorm:"not null;default:'active'" json:"status"`
}

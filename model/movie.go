package model

type Movie struct {
	DTO
	Title    string `gorm:"not null;index" validate:"required" json:"title"`
	Duration int    `gorm:"not null" validate:"required" json:"duration"` // phút
}

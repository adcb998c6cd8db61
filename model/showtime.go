package model

import (
	"cinema_admin/utils"
	"time"
)

type DayType string

const (
	DayTypeWeekday DayType = "WEEKDAY"
	DayTypeWeekend DayType = "WEEKEND"
)

// Showtime bản ghi lịch chiếu đã lưu
type Showtime struct {
	DTO
	PublicCode string    `gorm:"size:16;uniqueIndex" json:"publicCode"`
	StartTime  time.Time `gorm:"index" json:"start"`
	EndTime    time.Time `gorm:"index" json:"end"`
	DayType    DayType   `gorm:"size:10" json:"dayType"`
	IsActive   bool      `gorm:"default:true" json:"isActive"`
	Format     string    `gorm:"size:10" json:"format"` // 2D, 3D, IMAX, 4DX
	MovieId    uint      `json:"movieId"`
	RoomId     uint      `json:"roomId"`
	Movie      Movie     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:MovieId" json:"Movie"`
	Room       Room      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:RoomId" json:"Room"`
}

// ShowtimeDraft dữ liệu form tạo lịch chiếu, chỉ dùng một lần để sinh ShowtimeRecord
type ShowtimeDraft struct {
	MovieId              uint             `json:"movieId"`
	RoomId               uint             `json:"roomId"`
	StartDate            utils.CustomDate `json:"startDate"` // YYYY-MM-DD
	EndDate              utils.CustomDate `json:"endDate"`
	BufferMinutes        int              `json:"bufferMinutes" validate:"min=0"`
	AdMinutes            int              `json:"adMinutes" validate:"min=0"`
	FirstShowClock       string           `json:"firstShowClock" validate:"omitempty,clock"` // "09:30"
	MovieDurationMinutes int              `json:"movieDurationMinutes" validate:"min=0"`
}

type ShowtimeRecord struct {
	MovieId   uint      `json:"movieId"`
	RoomId    uint      `json:"roomId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	DayType   DayType   `json:"dayType"`
	IsActive  bool      `json:"isActive"`
}

type GenerateSlotsInput struct {
	MovieId        uint   `json:"movieId"`
	FirstShowClock string `json:"firstShowClock" validate:"required,clock"`
	BufferMinutes  int    `json:"bufferMinutes" validate:"min=0"`
	AdMinutes      int    `json:"adMinutes" validate:"min=0"`
}

type RemoveSlotInput struct {
	Slots []string `json:"slots" validate:"required,dive,clock"`
	Index int      `json:"index" validate:"min=0"`
}

type CreateShowtimeBatchInput struct {
	ShowtimeDraft
	Format string   `json:"format" validate:"omitempty,oneof=2D 3D IMAX 4DX"`
	Slots  []string `json:"slots" validate:"dive,clock"` // ["09:00", "11:20"]
}

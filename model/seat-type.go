package model

type SeatType struct {
	DTO
	Type          string  `gorm:"not null" validate:"required" json:"type"` // NORMAL VIP COUPLE
	Label         string  `json:"label"`                                    // tên hiển thị trên vé
	PriceModifier float64 `json:"priceModifier"`
}

func (s SeatType) DisplayName() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Type
}

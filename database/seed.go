package database

import (
	"cinema_admin/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB, log *zap.Logger) {
	seatTypes := []model.SeatType{
		{Type: "NORMAL", Label: "Ghế thường", PriceModifier: 1},
		{Type: "VIP", Label: "Ghế VIP", PriceModifier: 1.2},
		{Type: "COUPLE", Label: "Ghế đôi", PriceModifier: 2},
	}
	for i := range seatTypes {
		if err := db.Where("type = ?", seatTypes[i].Type).FirstOrCreate(&seatTypes[i]).Error; err != nil {
			log.Warn("failed to seed seat type", zap.String("type", seatTypes[i].Type), zap.Error(err))
		}
	}
}

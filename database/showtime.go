package database

import (
	"cinema_admin/helper"
	"cinema_admin/model"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

const showtimeBatchSize = 100

func newShowtimeCode() string {
	return "ST-" + strings.ToUpper(uuid.New().String()[:8])
}

// CreateShowtimes lưu cả lô lịch chiếu trong một transaction, format lấy từ form
func CreateShowtimes(db *gorm.DB, format string) helper.SubmitFunc {
	return func(ctx context.Context, records []model.ShowtimeRecord) error {
		showtimes := make([]model.Showtime, 0, len(records))
		for i := range records {
			var st model.Showtime
			if err := copier.Copy(&st, &records[i]); err != nil {
				return fmt.Errorf("map showtime record: %w", err)
			}
			st.PublicCode = newShowtimeCode()
			st.Format = format
			showtimes = append(showtimes, st)
		}

		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Omit("Movie", "Room").CreateInBatches(&showtimes, showtimeBatchSize).Error
		})
	}
}

func FindMovie(db *gorm.DB, id uint) (*model.Movie, error) {
	var movie model.Movie
	if err := db.First(&movie, id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func FindRoom(db *gorm.DB, id uint) (*model.Room, error) {
	var room model.Room
	if err := db.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

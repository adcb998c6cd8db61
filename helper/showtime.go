package helper

import (
	"cinema_admin/metrics"
	"cinema_admin/model"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	scheduler      *cron.Cron
	statsScheduler gocron.Scheduler
)

func StartShowtimeScheduler(db *gorm.DB, log *zap.Logger) {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Chạy mỗi 5 phút
	_, err := scheduler.AddFunc("*/5 * * * *", func() {
		count, err := DeactivateEndedShowtimes(db, time.Now())
		if err != nil {
			log.Error("deactivate ended showtimes", zap.Error(err))
			return
		}
		if count > 0 {
			log.Info("showtimes deactivated", zap.Int64("count", count))
		}
	})
	if err != nil {
		log.Error("init showtime scheduler", zap.Error(err))
		return
	}

	scheduler.Start()
	log.Info("showtime scheduler started", zap.String("schedule", "*/5 * * * *"))
}

// DeactivateEndedShowtimes tắt các suất đã kết thúc
func DeactivateEndedShowtimes(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&model.Showtime{}).
		Where("is_active = ? AND end_time < ?", true, now).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

// CountActiveShowtimesOn đếm suất còn hoạt động bắt đầu trong ngày của at (theo múi giờ của at)
func CountActiveShowtimesOn(db *gorm.DB, at time.Time) (int64, error) {
	dayStart := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int64
	err := db.Model(&model.Showtime{}).
		Where("is_active = ? AND start_time >= ? AND start_time < ?", true, dayStart, dayEnd).
		Count(&count).Error
	return count, err
}

func refreshShowtimesToday(db *gorm.DB, loc *time.Location, log *zap.Logger) {
	count, err := CountActiveShowtimesOn(db, time.Now().In(loc))
	if err != nil {
		log.Error("count today showtimes", zap.Error(err))
		return
	}
	metrics.SetShowtimesToday(count)
}

// StartShowtimeStatsScheduler cập nhật số suất chiếu trong ngày lúc 00:05 mỗi ngày
func StartShowtimeStatsScheduler(db *gorm.DB, loc *time.Location, log *zap.Logger) error {
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(refreshShowtimesToday, db, loc, log),
	)
	if err != nil {
		return err
	}

	statsScheduler = s
	refreshShowtimesToday(db, loc, log)
	s.Start()
	log.Info("showtime stats scheduler started", zap.String("at", "00:05"))
	return nil
}

// Dừng scheduler khi tắt server
func StopShowtimeScheduler() {
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	if statsScheduler != nil {
		_ = statsScheduler.Shutdown()
	}
}

// FormatTime chuẩn hóa lại khung giờ "15:04"
func FormatTime(hour, minute int) string {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC).Format("15:04")
}

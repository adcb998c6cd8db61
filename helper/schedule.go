package helper

import (
	"cinema_admin/model"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// Thời lượng mặc định khi chưa biết thời lượng phim
	DefaultMovieDurationMinutes = 120
	// Không mở suất mới từ 23h trở đi
	LastShowHour = 23
)

// ParseClock "HH:MM" -> giờ, phút
func ParseClock(clock string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid clock %q, expected HH:MM", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", clock)
	}
	return hour, minute, nil
}

func effectiveDuration(movieDurationMinutes int) int {
	if movieDurationMinutes <= 0 {
		return DefaultMovieDurationMinutes
	}
	return movieDurationMinutes
}

// GenerateTimeSlots sinh các khung giờ chiếu trong ngày bắt đầu từ firstShowClock,
// mỗi suất cách nhau (thời lượng phim + buffer + quảng cáo) phút, dừng khi tới 23h
func GenerateTimeSlots(firstShowClock string, movieDurationMinutes, bufferMinutes, adMinutes int) ([]string, error) {
	if strings.TrimSpace(firstShowClock) == "" {
		return nil, newValidationError("firstShowClock", "Vui lòng chọn giờ chiếu đầu tiên")
	}
	if bufferMinutes < 0 {
		return nil, newValidationError("bufferMinutes", "Thời gian dọn phòng không được âm")
	}
	if adMinutes < 0 {
		return nil, newValidationError("adMinutes", "Thời gian quảng cáo không được âm")
	}
	currentHours, currentMinutes, err := ParseClock(firstShowClock)
	if err != nil {
		return nil, newValidationError("firstShowClock", err.Error())
	}

	slotDuration := effectiveDuration(movieDurationMinutes) + bufferMinutes + adMinutes

	slots := []string{}
	for currentHours < LastShowHour {
		slots = append(slots, FormatTime(currentHours, currentMinutes))

		currentMinutes += slotDuration
		currentHours += currentMinutes / 60
		currentMinutes %= 60
	}
	return slots, nil
}

// RemoveTimeSlot bỏ khung giờ tại index, không sửa slice gốc
func RemoveTimeSlot(slots []string, index int) ([]string, error) {
	if index < 0 || index >= len(slots) {
		return nil, newValidationError("index", fmt.Sprintf("Khung giờ thứ %d không tồn tại", index))
	}
	result := make([]string, 0, len(slots)-1)
	result = append(result, slots[:index]...)
	result = append(result, slots[index+1:]...)
	return result, nil
}

// BuildShowtimeRecords nhân danh sách khung giờ với từng ngày trong khoảng StartDate..EndDate
func BuildShowtimeRecords(draft model.ShowtimeDraft, slots []string, loc *time.Location) ([]model.ShowtimeRecord, error) {
	if draft.StartDate.IsZero() {
		return nil, newValidationError("startDate", "Vui lòng chọn ngày bắt đầu")
	}
	endDate := draft.EndDate
	if endDate.IsZero() {
		endDate = draft.StartDate
	}
	if endDate.Before(draft.StartDate.Time) {
		return nil, newValidationError("endDate", "Ngày kết thúc phải sau ngày bắt đầu")
	}

	type clock struct{ hour, minute int }
	clocks := make([]clock, 0, len(slots))
	for _, slot := range slots {
		h, m, err := ParseClock(slot)
		if err != nil {
			return nil, newValidationError("slots", err.Error())
		}
		clocks = append(clocks, clock{h, m})
	}

	duration := time.Duration(effectiveDuration(draft.MovieDurationMinutes)) * time.Minute

	var records []model.ShowtimeRecord
	for d := draft.StartDate.Time; !d.After(endDate.Time); d = d.AddDate(0, 0, 1) {
		for _, c := range clocks {
			startTime := time.Date(d.Year(), d.Month(), d.Day(), c.hour, c.minute, 0, 0, loc)
			records = append(records, model.ShowtimeRecord{
				MovieId:   draft.MovieId,
				RoomId:    draft.RoomId,
				StartTime: startTime,
				EndTime:   startTime.Add(duration),
				DayType:   ClassifyDayType(startTime),
				IsActive:  true,
			})
		}
	}
	return records, nil
}

// SubmitFunc nơi nhận danh sách lịch chiếu (lưu DB, gọi API...)
type SubmitFunc func(ctx context.Context, records []model.ShowtimeRecord) error

// SubmitShowtimes kiểm tra form, sinh bản ghi và giao cho onSubmit đúng một lần
func SubmitShowtimes(ctx context.Context, draft model.ShowtimeDraft, slots []string, loc *time.Location, onSubmit SubmitFunc) ([]model.ShowtimeRecord, error) {
	switch {
	case draft.MovieId == 0:
		return nil, newValidationError("movieId", "Vui lòng chọn phim")
	case draft.RoomId == 0:
		return nil, newValidationError("roomId", "Vui lòng chọn phòng chiếu")
	case draft.StartDate.IsZero():
		return nil, newValidationError("startDate", "Vui lòng chọn ngày bắt đầu")
	case len(slots) == 0:
		return nil, newValidationError("slots", "Chưa có khung giờ chiếu nào")
	}

	records, err := BuildShowtimeRecords(draft, slots, loc)
	if err != nil {
		return nil, err
	}
	if err := onSubmit(ctx, records); err != nil {
		return nil, fmt.Errorf("submit showtimes: %w", err)
	}
	return records, nil
}

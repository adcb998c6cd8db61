package helper

import (
	"cinema_admin/model"
	"time"
)

// ClassifyDayType thứ 7, chủ nhật là cuối tuần
func ClassifyDayType(date time.Time) model.DayType {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return model.DayTypeWeekend
	default:
		return model.DayTypeWeekday
	}
}

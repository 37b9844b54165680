package domain

import (
	"time"

	"github.com/schwarztim/CSC425/pkg/types"
)

// Рабочее окно бронирования
// Последний слот начинается в 17:30 и заканчивается ровно в момент закрытия
const (
	OpenTime      = types.TimeString("10:00")
	LastSlotStart = types.TimeString("17:30")
	CloseTime     = types.TimeString("18:00")

	SlotDurationMinutes = 30
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	TimeSlotFormat = "2006-01-02 15:04" // значение time_slot в API
)

// AllowedWeekdays дни недели, в которые разрешено бронирование
// Политика задана явным перечислением (вторник-суббота), а не индексной арифметикой
var AllowedWeekdays = map[time.Weekday]bool{
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
	time.Friday:    true,
	time.Saturday:  true,
}

// IsAllowedWeekday проверяет, что в указанный день недели бронирование разрешено
func IsAllowedWeekday(d time.Weekday) bool {
	return AllowedWeekdays[d]
}

package domain

import (
	"time"

	"github.com/schwarztim/CSC425/pkg/types"
)

// Booking запись о бронировании одного временного слота
// Слот (time_slot) уникален: два бронирования не могут указывать на одно и то же время
type Booking struct {
	ID          int64
	TimeSlot    time.Time // дата + время начала слота
	Name        string
	PhoneNumber string
	CreatedAt   time.Time
}

// Date возвращает дату слота (без времени)
func (b *Booking) Date() time.Time {
	return time.Date(b.TimeSlot.Year(), b.TimeSlot.Month(), b.TimeSlot.Day(), 0, 0, 0, 0, b.TimeSlot.Location())
}

// StartTime возвращает время начала слота в формате "HH:MM"
func (b *Booking) StartTime() types.TimeString {
	return types.NewTimeString(b.TimeSlot)
}

// NewTimeSlot собирает значение time_slot из даты и времени начала
func NewTimeSlot(date time.Time, startTime types.TimeString) (time.Time, error) {
	parsed, err := time.Parse(TimeFormat, startTime.String())
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

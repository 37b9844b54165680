package domain

import "github.com/schwarztim/CSC425/pkg/types"

// Slot временной слот с признаком занятости
// Вычисляется на каждый запрос доступности, не персистится
type Slot struct {
	Time   types.TimeString
	Booked bool
}

// IsAvailable возвращает true, если слот свободен
func (s *Slot) IsAvailable() bool {
	return !s.Booked
}

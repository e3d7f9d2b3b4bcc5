package get_available_times

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BarberID) == "" {
		return fmt.Errorf("%w: barberId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateSchedule проверяет конфигурацию рабочих часов
func validateSchedule(s Schedule) error {
	if err := s.OpenTime.Validate(); err != nil {
		return fmt.Errorf("open time: %w", err)
	}
	if err := s.CloseTime.Validate(); err != nil {
		return fmt.Errorf("close time: %w", err)
	}
	if !s.OpenTime.IsBefore(s.CloseTime) {
		return fmt.Errorf("open time %s must be before close time %s", s.OpenTime, s.CloseTime)
	}
	if s.SlotStepMinutes <= 0 {
		return fmt.Errorf("slot step must be positive, got %d", s.SlotStepMinutes)
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

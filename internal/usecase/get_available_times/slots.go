package get_available_times

import (
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/pkg/types"
)

// generateStartTimes все времена начала с фиксированным шагом от открытия до закрытия
// Для сегодняшнего дня отбрасываются времена раньше now + minNotice
func generateStartTimes(schedule Schedule, requestDate time.Time, now time.Time) ([]types.TimeString, error) {
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	// Шаг 1: все слоты дня
	all := make([]types.TimeString, 0)
	current := schedule.OpenTime

	for current.IsBefore(schedule.CloseTime) {
		end, err := current.AddMinutes(schedule.SlotStepMinutes)
		if err != nil || end.IsAfter(schedule.CloseTime) {
			break
		}

		all = append(all, current)
		current = end
	}

	// Шаг 2: не сегодня - возвращаем все
	if !isSameDay(requestDate, now) {
		return all, nil
	}

	// Шаг 3: сегодня - только будущие с учётом минимального запаса
	minAllowed, err := types.NewTimeString(now).AddMinutes(schedule.MinNoticeMinutes)
	if err != nil {
		// Запас выходит за полночь, сегодня записаться уже нельзя
		return []types.TimeString{}, nil
	}

	upcoming := make([]types.TimeString, 0, len(all))
	for _, slot := range all {
		if !slot.IsBefore(minAllowed) {
			upcoming = append(upcoming, slot)
		}
	}

	return upcoming, nil
}

// markAvailability слот занят, если с ним пересекается активная запись барбера
func markAvailability(starts []types.TimeString, stepMinutes int, appointments []*domain.Appointment) []Slot {
	result := make([]Slot, len(starts))

	for i, start := range starts {
		result[i] = Slot{
			StartTime: start,
			Available: countOverlapping(start, stepMinutes, appointments) == 0,
		}
	}

	return result
}

// countOverlapping подсчитывает записи, пересекающиеся со слотом
// Записи, которые только граничат со слотом, пересечением не считаются
// Запись без известной длительности занимает ровно один шаг
//
// Примеры:
// - Слот 11:30-12:00, запись 11:20-11:40 → пересечение
// - Слот 11:30-12:00, запись 11:00-11:30 → нет (граничат)
func countOverlapping(slotStart types.TimeString, stepMinutes int, appointments []*domain.Appointment) int {
	slotEnd, err := slotStart.AddMinutes(stepMinutes)
	if err != nil {
		return 0
	}

	count := 0
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}

		duration := a.ServiceDuration
		if duration <= 0 {
			duration = stepMinutes
		}

		apptEnd, err := a.Time.AddMinutes(duration)
		if err != nil {
			// Запись до конца суток
			apptEnd = "24:00"
		}

		if a.Time.IsBefore(slotEnd) && apptEnd.IsAfter(slotStart) {
			count++
		}
	}

	return count
}

package get_available_times

import (
	"time"

	"github.com/m04kA/BarberShop-BookingService/pkg/types"
)

// Schedule рабочие часы барбершопа
type Schedule struct {
	OpenTime         types.TimeString // Начало первого слота, например "09:00"
	CloseTime        types.TimeString // Слот должен закончиться не позже
	SlotStepMinutes  int              // Шаг между началами слотов
	MinNoticeMinutes int              // Для сегодняшнего дня слоты ближе этого порога скрываются
}

// Request модель запроса свободного времени
type Request struct {
	BarberID string
	Date     time.Time // Календарный день
}

// Response модель ответа со списком времени
type Response struct {
	Date     time.Time
	BarberID string
	Slots    []Slot
}

// Slot время начала и признак занятости
// Справочная информация, фиксация записи её не проверяет
type Slot struct {
	StartTime types.TimeString
	Available bool
}

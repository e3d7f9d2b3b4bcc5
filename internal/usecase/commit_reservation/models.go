package commit_reservation

import (
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/pkg/types"
)

// Response созданная запись
type Response struct {
	ID            string
	BarberID      string
	ServiceID     string
	Date          time.Time        // Календарный день
	Time          types.TimeString // Время начала, HH:MM
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Status        string // Всегда pending

	// Данные выбора для экрана подтверждения
	ServiceName  string
	ServicePrice float64
	BarberName   string

	CreatedAt time.Time
}

func toResponse(a *domain.Appointment, draft *domain.BookingDraft) *Response {
	return &Response{
		ID:            a.ID,
		BarberID:      a.BarberID,
		ServiceID:     a.ServiceID,
		Date:          a.Date,
		Time:          a.Time,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		CustomerEmail: a.CustomerEmail,
		Status:        string(a.Status),
		ServiceName:   draft.Service.Name,
		ServicePrice:  draft.Service.Price,
		BarberName:    draft.Provider.Name,
		CreatedAt:     a.CreatedAt,
	}
}

package create_appointment

import (
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/usecase/commit_reservation"
	"github.com/m04kA/BarberShop-BookingService/pkg/phone"
	"github.com/m04kA/BarberShop-BookingService/pkg/types"
)

// CreateAppointmentRequest полный набор данных бронирования одним запросом
// status принимается для совместимости и игнорируется: новая запись всегда pending
type CreateAppointmentRequest struct {
	ServiceID     string  `json:"serviceId"`
	BarberID      string  `json:"barberId"`
	Date          string  `json:"date"` // "2025-03-10"
	Time          string  `json:"time"` // "14:30"
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// AppointmentResponse HTTP модель созданной записи
type AppointmentResponse struct {
	ID            string  `json:"id"`
	BarberID      string  `json:"barberId"`
	ServiceID     string  `json:"serviceId"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Status        string  `json:"status"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
	BarberName    string  `json:"barberName"`
	CreatedAt     string  `json:"createdAt"`
}

// applySchedule переносит дату, время и клиента в черновик
// Пустые дата и время остаются nil, их отсутствие отловит проверка полноты
func (r *CreateAppointmentRequest) applySchedule(draft *domain.BookingDraft) error {
	if r.Date != "" {
		date, err := domain.ParseCalendarDate(r.Date)
		if err != nil {
			return err
		}
		draft.Date = &date
	}

	if r.Time != "" {
		tm, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return err
		}
		draft.Time = &tm
	}

	draft.Customer = domain.CustomerData{
		Name:  r.CustomerName,
		Phone: phone.Format(r.CustomerPhone),
	}
	if r.CustomerEmail != nil {
		draft.Customer.Email = *r.CustomerEmail
	}

	return nil
}

func FromUseCaseResponse(resp *commit_reservation.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		BarberID:      resp.BarberID,
		ServiceID:     resp.ServiceID,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.Time.String(),
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		CustomerEmail: resp.CustomerEmail,
		Status:        resp.Status,
		ServiceName:   resp.ServiceName,
		ServicePrice:  resp.ServicePrice,
		BarberName:    resp.BarberName,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}

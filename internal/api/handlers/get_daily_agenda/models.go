package get_daily_agenda

import (
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/service/appointments"
)

// AgendaResponse записи дня и счётчики
type AgendaResponse struct {
	Date         string                `json:"date"`
	Stats        StatsResponse         `json:"stats"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type StatsResponse struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Total     int `json:"total"`
}

type AppointmentResponse struct {
	ID              string  `json:"id"`
	Time            string  `json:"time"`
	Status          string  `json:"status"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail,omitempty"`
	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServiceDuration int     `json:"serviceDuration"`
	BarberID        string  `json:"barberId"`
	BarberName      string  `json:"barberName"`
	CreatedAt       string  `json:"createdAt"`
}

func FromAgenda(agenda *appointments.Agenda) *AgendaResponse {
	stats := agenda.Stats()
	resp := &AgendaResponse{
		Date: agenda.Date.Format(domain.DateFormat),
		Stats: StatsResponse{
			Pending:   stats.Pending,
			Confirmed: stats.Confirmed,
			Total:     stats.Total,
		},
		Appointments: make([]AppointmentResponse, 0, len(agenda.Appointments)),
	}

	for _, a := range agenda.Appointments {
		resp.Appointments = append(resp.Appointments, AppointmentResponse{
			ID:              a.ID,
			Time:            a.Time.String(),
			Status:          string(a.Status),
			CustomerName:    a.CustomerName,
			CustomerPhone:   a.CustomerPhone,
			CustomerEmail:   a.CustomerEmail,
			ServiceID:       a.ServiceID,
			ServiceName:     a.ServiceName,
			ServiceDuration: a.ServiceDuration,
			BarberID:        a.BarberID,
			BarberName:      a.BarberName,
			CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp
}

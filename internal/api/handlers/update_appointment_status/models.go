package update_appointment_status

import (
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

// UpdateStatusRequest целевой статус: confirmed или cancelled
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AppointmentResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	BarberID  string `json:"barberId"`
	ServiceID string `json:"serviceId"`
	UpdatedAt string `json:"updatedAt"`
}

func FromDomain(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        a.ID,
		Status:    string(a.Status),
		Date:      a.Date.Format(domain.DateFormat),
		Time:      a.Time.String(),
		BarberID:  a.BarberID,
		ServiceID: a.ServiceID,
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

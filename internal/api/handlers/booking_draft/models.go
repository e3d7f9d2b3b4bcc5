package booking_draft

import (
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/api/handlers"
	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/service/drafts"
	"github.com/m04kA/BarberShop-BookingService/internal/usecase/commit_reservation"
	"github.com/m04kA/BarberShop-BookingService/pkg/types"
)

// SelectServiceRequest PUT /drafts/{draftId}/service
type SelectServiceRequest struct {
	ServiceID string `json:"serviceId"`
}

// SelectBarberRequest PUT /drafts/{draftId}/barber
type SelectBarberRequest struct {
	BarberID string `json:"barberId"`
}

// SelectDateTimeRequest PUT /drafts/{draftId}/datetime, пропущенное поле не меняется
type SelectDateTimeRequest struct {
	Date *string `json:"date,omitempty"` // "2025-03-10"
	Time *string `json:"time,omitempty"` // "14:30"
}

// UpdateCustomerRequest PUT /drafts/{draftId}/customer, пропущенное поле не меняется
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// DraftResponse HTTP модель сессии черновика
type DraftResponse struct {
	ID          string            `json:"id"`
	Step        string            `json:"step"`
	Service     *ServiceResponse  `json:"service"`
	Barber      *BarberResponse   `json:"barber"`
	Date        *string           `json:"date"`
	Time        *string           `json:"time"`
	Customer    CustomerResponse  `json:"customer"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Complete    bool              `json:"complete"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

type BarberResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Rating    float64 `json:"rating"`
}

type CustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// AppointmentResponse созданная при фиксации запись
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

// ValidationResponse 422 для шага, который не прошёл проверку
type ValidationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
	Draft  *DraftResponse    `json:"draft"`
}

// ToServiceUpdate разбирает дату и время
func (r *SelectDateTimeRequest) ToServiceUpdate() (drafts.DateTimeUpdate, error) {
	var upd drafts.DateTimeUpdate

	if r.Date != nil {
		date, err := domain.ParseCalendarDate(*r.Date)
		if err != nil {
			return upd, err
		}
		upd.Date = &date
	}

	if r.Time != nil {
		tm, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return upd, err
		}
		upd.Time = &tm
	}

	return upd, nil
}

func (r *UpdateCustomerRequest) ToServiceUpdate() drafts.CustomerUpdate {
	return drafts.CustomerUpdate{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
	}
}

// FromDomain конвертирует сессию в HTTP ответ
func FromDomain(s *domain.DraftSession) *DraftResponse {
	resp := &DraftResponse{
		ID:   s.ID,
		Step: s.Step.String(),
		Customer: CustomerResponse{
			Name:  s.Draft.Customer.Name,
			Phone: s.Draft.Customer.Phone,
			Email: s.Draft.Customer.Email,
		},
		Complete:  s.Draft.IsComplete(),
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}

	if svc := s.Draft.Service; svc != nil {
		resp.Service = &ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		}
	}
	if p := s.Draft.Provider; p != nil {
		resp.Barber = &BarberResponse{
			ID:        p.ID,
			Name:      p.Name,
			Specialty: p.Specialty,
			Rating:    p.Rating,
		}
		if p.AvatarURL != "" {
			avatar := p.AvatarURL
			resp.Barber.AvatarURL = &avatar
		}
	}
	if s.Draft.Date != nil {
		date := s.Draft.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if s.Draft.Time != nil {
		tm := s.Draft.Time.String()
		resp.Time = &tm
	}
	if len(s.FieldErrors) > 0 {
		resp.FieldErrors = handlers.FieldErrorsMap(s.FieldErrors)
	}

	return resp
}

func FromCommitResponse(resp *commit_reservation.Response) *AppointmentResponse {
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

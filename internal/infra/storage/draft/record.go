package draft

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/pkg/types"
)

// record представление сессии в хранилище
type record struct {
	ID          string              `json:"id"`
	Step        int                 `json:"step"`
	Service     *domain.Service     `json:"service,omitempty"`
	Provider    *domain.Provider    `json:"provider,omitempty"`
	Date        string              `json:"date,omitempty"`
	Time        string              `json:"time,omitempty"`
	Name        string              `json:"name"`
	Phone       string              `json:"phone"`
	Email       string              `json:"email"`
	FieldErrors []domain.FieldError `json:"field_errors,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func encode(s *domain.DraftSession) ([]byte, error) {
	rec := record{
		ID:          s.ID,
		Step:        int(s.Step),
		Service:     s.Draft.Service,
		Provider:    s.Draft.Provider,
		Name:        s.Draft.Customer.Name,
		Phone:       s.Draft.Customer.Phone,
		Email:       s.Draft.Customer.Email,
		FieldErrors: s.FieldErrors,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Draft.Date != nil {
		rec.Date = s.Draft.Date.Format(domain.DateFormat)
	}
	if s.Draft.Time != nil {
		rec.Time = s.Draft.Time.String()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

func decode(data []byte) (*domain.DraftSession, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	s := &domain.DraftSession{
		ID:   rec.ID,
		Step: domain.Step(rec.Step),
		Draft: domain.BookingDraft{
			Service:  rec.Service,
			Provider: rec.Provider,
			Customer: domain.CustomerData{
				Name:  rec.Name,
				Phone: rec.Phone,
				Email: rec.Email,
			},
		},
		FieldErrors: rec.FieldErrors,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}

	if rec.Date != "" {
		d, err := domain.ParseCalendarDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date: %v", ErrDecode, err)
		}
		s.Draft.Date = &d
	}
	if rec.Time != "" {
		t := types.TimeString(rec.Time)
		s.Draft.Time = &t
	}

	return s, nil
}

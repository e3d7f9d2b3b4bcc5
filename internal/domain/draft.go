package domain

import (
	"time"

	"github.com/m04kA/BarberShop-BookingService/pkg/types"
)

// Step шаг мастера бронирования
type Step int

const (
	StepService Step = iota + 1
	StepProvider
	StepDateTime
	StepCustomer
	StepSummary
)

var stepNames = map[Step]string{
	StepService:  "service",
	StepProvider: "barber",
	StepDateTime: "datetime",
	StepCustomer: "customer",
	StepSummary:  "summary",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal шаг подтверждения, дальше только фиксация
func (s Step) IsTerminal() bool {
	return s == StepSummary
}

// CustomerData поля клиента в черновике, изначально пустые строки
type CustomerData struct {
	Name  string
	Phone string
	Email string
}

// BookingDraft накапливает выбор клиента между шагами и никогда не сохраняется частично
type BookingDraft struct {
	Service  *Service
	Provider *Provider
	Date     *time.Time
	Time     *types.TimeString
	Customer CustomerData
}

// StepErrors проверяет предикат полноты одного шага
// Пустой результат означает, что переход вперёд разрешён
func (d *BookingDraft) StepErrors(step Step) []FieldError {
	var errs []FieldError

	switch step {
	case StepService:
		if d.Service == nil {
			errs = append(errs, FieldError{Field: FieldService, Message: msgServiceRequired})
		}
	case StepProvider:
		if d.Provider == nil {
			errs = append(errs, FieldError{Field: FieldBarber, Message: msgBarberRequired})
		}
	case StepDateTime:
		if d.Date == nil {
			errs = append(errs, FieldError{Field: FieldDate, Message: msgDateRequired})
		}
		if d.Time == nil {
			errs = append(errs, FieldError{Field: FieldTime, Message: msgTimeRequired})
		}
	case StepCustomer:
		for _, fe := range []*FieldError{
			ValidateCustomerName(d.Customer.Name),
			ValidateCustomerPhone(d.Customer.Phone),
			ValidateCustomerEmail(d.Customer.Email),
		} {
			if fe != nil {
				errs = append(errs, *fe)
			}
		}
	}

	return errs
}

// Validate проверяет все четыре шага до подтверждения
func (d *BookingDraft) Validate() []FieldError {
	var errs []FieldError
	for _, step := range []Step{StepService, StepProvider, StepDateTime, StepCustomer} {
		errs = append(errs, d.StepErrors(step)...)
	}
	return errs
}

// IsComplete черновик готов к фиксации
func (d *BookingDraft) IsComplete() bool {
	return len(d.Validate()) == 0
}

// DraftSession сессия мастера бронирования: черновик, текущий шаг и последние ошибки шага
type DraftSession struct {
	ID          string
	Draft       BookingDraft
	Step        Step
	FieldErrors []FieldError
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDraftSession пустой черновик на первом шаге
func NewDraftSession(id string, now time.Time) *DraftSession {
	return &DraftSession{
		ID:        id,
		Step:      StepService,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Next переход вперёд, только если выполнен предикат текущего шага
// Ошибки запоминаются в сессии, данные черновика не меняются
func (s *DraftSession) Next() ([]FieldError, bool) {
	if s.Step.IsTerminal() {
		return nil, false
	}

	if errs := s.Draft.StepErrors(s.Step); len(errs) > 0 {
		s.FieldErrors = errs
		return errs, false
	}

	s.Step++
	s.FieldErrors = nil
	return nil, true
}

// Back переход на предыдущий шаг без проверки и без очистки введённых данных
func (s *DraftSession) Back() bool {
	if s.Step <= StepService {
		return false
	}
	s.Step--
	s.FieldErrors = nil
	return true
}

// ClearFieldErrors снимает ошибки с изменённых полей
func (s *DraftSession) ClearFieldErrors(fields ...string) {
	if len(s.FieldErrors) == 0 {
		return
	}

	kept := s.FieldErrors[:0]
	for _, fe := range s.FieldErrors {
		if !containsString(fields, fe.Field) {
			kept = append(kept, fe)
		}
	}
	if len(kept) == 0 {
		kept = nil
	}
	s.FieldErrors = kept
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

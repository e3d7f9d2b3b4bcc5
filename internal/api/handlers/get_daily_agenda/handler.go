package get_daily_agenda

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/BarberShop-BookingService/internal/api/handlers"
	"github.com/m04kA/BarberShop-BookingService/internal/api/middleware"
	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/service/appointments"
)

const (
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden         = "доступ запрещен"
	msgAgendaUnavailable = "записи дня временно недоступны"
)

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}

type Handler struct {
	service      AppointmentService
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service:      service,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/agenda?date=YYYY-MM-DD, без даты отдаётся сегодняшний день
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := domain.CalendarDate(h.timeProvider.Now())
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := domain.ParseCalendarDate(dateStr)
		if err != nil {
			h.logger.Warn("GET /agenda - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	role := middleware.GetRole(r.Context())

	agenda, err := h.service.Agenda(r.Context(), role, date)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /agenda - Access denied: role=%s", role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrAgendaUnavailable):
			h.logger.Error("GET /agenda - Agenda unavailable: date=%s, error=%v", date.Format(domain.DateFormat), err)
			handlers.RespondServiceUnavailable(w, msgAgendaUnavailable)

		default:
			h.logger.Error("GET /agenda - Failed to load agenda: date=%s, error=%v", date.Format(domain.DateFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agenda - Returned %d appointments for %s", len(agenda.Appointments), date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromAgenda(agenda))
}

package get_available_times

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BarberShop-BookingService/internal/api/handlers"
	availableTimes "github.com/m04kA/BarberShop-BookingService/internal/usecase/get_available_times"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast      = "дата в прошлом"
	msgBarberNotFound  = "барбер не найден"
	msgInvalidBarberID = "некорректный ID барбера"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/available-times?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID := mux.Vars(r)["barberId"]
	dateStr := r.URL.Query().Get("date")

	req, err := ToUseCaseRequest(barberID, dateStr)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/available-times - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availableTimes.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/available-times - Invalid input: barber_id=%s, error=%v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidBarberID)

		case errors.Is(err, availableTimes.ErrInvalidDate):
			h.logger.Warn("GET /barbers/{id}/available-times - Date in the past: barber_id=%s, date=%s", barberID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, availableTimes.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/available-times - Barber not found: barber_id=%s", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /barbers/{id}/available-times - Failed: barber_id=%s, date=%s, error=%v", barberID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbers/{id}/available-times - Returned %d slots: barber_id=%s, date=%s",
		len(result.Slots), barberID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

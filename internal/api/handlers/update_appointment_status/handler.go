package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BarberShop-BookingService/internal/api/handlers"
	"github.com/m04kA/BarberShop-BookingService/internal/api/middleware"
	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/service/appointments"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStatus       = "статус должен быть confirmed или cancelled"
	msgForbidden           = "доступ запрещен"
	msgAppointmentNotFound = "запись не найдена"
	msgNotPending          = "запись уже обработана"
	msgTransitionFailed    = "не удалось изменить статус, попробуйте ещё раз"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["appointmentId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	target, ok := domain.ParseAppointmentStatus(req.Status)
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/status - Unknown status %q: appointment_id=%s", req.Status, id)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	role := middleware.GetRole(r.Context())

	updated, err := h.service.Transition(r.Context(), role, id, target)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/status - Access denied: appointment_id=%s, role=%s", id, role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid target: appointment_id=%s, status=%s", id, target)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Not found: appointment_id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrNotPending):
			h.logger.Warn("PATCH /appointments/{id}/status - Not pending: appointment_id=%s", id)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, appointments.ErrTransition):
			h.logger.Error("PATCH /appointments/{id}/status - Transition failed: appointment_id=%s, error=%v", id, err)
			handlers.RespondBadGateway(w, msgTransitionFailed)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed: appointment_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Appointment %s is now %s", id, updated.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}

package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/BarberShop-BookingService/internal/api/handlers"
	"github.com/m04kA/BarberShop-BookingService/internal/domain"
	"github.com/m04kA/BarberShop-BookingService/internal/service/catalog"
	"github.com/m04kA/BarberShop-BookingService/internal/usecase/commit_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound    = "услуга не найдена"
	msgBarberNotFound     = "барбер не найден"
	msgCatalogUnavailable = "каталог временно недоступен"
	msgIncompleteDraft    = "данные бронирования заполнены не полностью"
	msgCouldNotComplete   = "could not complete booking, try again"
)

type Handler struct {
	catalog CatalogService
	useCase CommitReservationUseCase
	logger  Logger
}

func NewHandler(catalog CatalogService, useCase CommitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Status != nil && *req.Status != string(domain.StatusPending) {
		h.logger.Warn("POST /appointments - Ignoring client status=%s", *req.Status)
	}

	// Собираем черновик из каталога и полей запроса
	var draft domain.BookingDraft

	if req.ServiceID != "" {
		service, err := h.catalog.FindService(r.Context(), req.ServiceID)
		if err != nil {
			h.respondCatalogError(w, err, req.ServiceID, req.BarberID)
			return
		}
		draft.Service = service
	}

	if req.BarberID != "" {
		provider, err := h.catalog.FindProvider(r.Context(), req.BarberID)
		if err != nil {
			h.respondCatalogError(w, err, req.ServiceID, req.BarberID)
			return
		}
		draft.Provider = provider
	}

	if err := req.applySchedule(&draft); err != nil {
		h.logger.Warn("POST /appointments - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Фиксация
	result, err := h.useCase.Execute(r.Context(), &draft)
	if err != nil {
		var incomplete *commit_reservation.IncompleteDraftError
		switch {
		case errors.As(err, &incomplete):
			h.logger.Warn("POST /appointments - Incomplete booking: %v", err)
			handlers.RespondUnprocessable(w, msgIncompleteDraft, handlers.FieldErrorsMap(incomplete.Fields))

		case errors.Is(err, commit_reservation.ErrStoreRejected):
			h.logger.Error("POST /appointments - Store rejected: service_id=%s, barber_id=%s, error=%v",
				req.ServiceID, req.BarberID, err)
			handlers.RespondBadGateway(w, msgCouldNotComplete)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%s, barber_id=%s, date=%s %s",
		result.ID, result.BarberID, result.Date.Format(domain.DateFormat), result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondCatalogError(w http.ResponseWriter, err error, serviceID, barberID string) {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("POST /appointments - Service not found: service_id=%s", serviceID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, catalog.ErrProviderNotFound):
		h.logger.Warn("POST /appointments - Barber not found: barber_id=%s", barberID)
		handlers.RespondNotFound(w, msgBarberNotFound)

	case errors.Is(err, catalog.ErrCatalogUnavailable):
		h.logger.Error("POST /appointments - Catalog unavailable: %v", err)
		handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

	default:
		h.logger.Error("POST /appointments - Catalog error: %v", err)
		handlers.RespondInternalError(w)
	}
}

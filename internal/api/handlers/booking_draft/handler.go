package booking_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BarberShop-BookingService/internal/api/handlers"
	"github.com/m04kA/BarberShop-BookingService/internal/service/drafts"
	"github.com/m04kA/BarberShop-BookingService/internal/usecase/commit_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgDraftNotFound       = "черновик не найден или истёк"
	msgServiceNotFound     = "услуга не найдена"
	msgBarberNotFound      = "барбер не найден"
	msgCatalogUnavailable  = "каталог временно недоступен"
	msgStepValidation      = "шаг заполнен не полностью"
	msgIncompleteDraft     = "черновик заполнен не полностью"
	msgNotOnSummary        = "подтверждение доступно только с последнего шага"
	msgSubmitInProgress    = "бронирование уже отправляется"
	msgCouldNotCompleteBkg = "could not complete booking, try again"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Start POST /api/v1/drafts
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Start(r.Context())
	if err != nil {
		h.respondError(w, "POST /drafts", "", err)
		return
	}

	h.logger.Info("POST /drafts - Draft started: draft_id=%s", session.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(session))
}

// Get GET /api/v1/drafts/{draftId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := draftID(r)

	session, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /drafts/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(session))
}

// SelectService PUT /api/v1/drafts/{draftId}/service
func (h *Handler) SelectService(w http.ResponseWriter, r *http.Request) {
	id := draftID(r)

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectService(r.Context(), id, req.ServiceID)
	if err != nil {
		h.respondError(w, "PUT /drafts/{id}/service", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(session))
}

// SelectBarber PUT /api/v1/drafts/{draftId}/barber
func (h *Handler) SelectBarber(w http.ResponseWriter, r *http.Request) {
	id := draftID(r)

	var req SelectBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/barber - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectProvider(r.Context(), id, req.BarberID)
	if err != nil {
		h.respondError(w, "PUT /drafts/{id}/barber", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(session))
}

// SelectDateTime PUT /api/v1/drafts/{draftId}/datetime
func (h *Handler) SelectDateTime(w http.ResponseWriter, r *http.Request) {
	id := draftID(r)

	var req SelectDateTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/datetime - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	upd, err := req.ToServiceUpdate()
	if err != nil {
		h.logger.Warn("PUT /drafts/{id}/datetime - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	session, err := h.service.SelectDateTime(r.Context(), id, upd)
	if err != nil {
		h.respondError(w, "PUT /drafts/{id}/datetime", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(session))
}

// UpdateCustomer PUT /api/v1/drafts/{draftId}/customer
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := draftID(r)

	var req UpdateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drafts/{id}/customer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.UpdateCustomer(r.Context(), id, req.ToServiceUpdate())
	if err != nil {
		h.respondError(w, "PUT /drafts/{id}/customer", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(session))
}

// Next POST /api/v1/drafts/{draftId}/next
// Если шаг не заполнен, отвечает 422 с ошибками полей и текущим состоянием черновика
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	id := draftID(r)

	session, err := h.service.Next(r.Context(), id)
	if err != nil {
		var validationErr *drafts.ValidationError
		if errors.As(err, &validationErr) && session != nil {
			h.logger.Info("POST /drafts/{id}/next - Step %s blocked: draft_id=%s", validationErr.Step, id)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, ValidationResponse{
				Error:  msgStepValidation,
				Fields: handlers.FieldErrorsMap(validationErr.Fields),
				Draft:  FromDomain(session),
			})
			return
		}
		h.respondError(w, "POST /drafts/{id}/next", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(session))
}

// Back POST /api/v1/drafts/{draftId}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	id := draftID(r)

	session, err := h.service.Back(r.Context(), id)
	if err != nil {
		h.respondError(w, "POST /drafts/{id}/back", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(session))
}

// Submit POST /api/v1/drafts/{draftId}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id := draftID(r)

	result, err := h.service.Submit(r.Context(), id)
	if err != nil {
		h.respondError(w, "POST /drafts/{id}/submit", id, err)
		return
	}

	h.logger.Info("POST /drafts/{id}/submit - Appointment created: draft_id=%s, appointment_id=%s", id, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromCommitResponse(result))
}

// Discard DELETE /api/v1/drafts/{draftId}
func (h *Handler) Discard(w http.ResponseWriter, r *http.Request) {
	id := draftID(r)

	if err := h.service.Discard(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /drafts/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id string, err error) {
	var incomplete *commit_reservation.IncompleteDraftError

	switch {
	case errors.Is(err, drafts.ErrDraftNotFound):
		h.logger.Warn("%s - Draft not found: draft_id=%s", route, id)
		handlers.RespondNotFound(w, msgDraftNotFound)

	case errors.Is(err, drafts.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: draft_id=%s", route, id)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, drafts.ErrProviderNotFound):
		h.logger.Warn("%s - Barber not found: draft_id=%s", route, id)
		handlers.RespondNotFound(w, msgBarberNotFound)

	case errors.Is(err, drafts.ErrCatalogUnavailable):
		h.logger.Error("%s - Catalog unavailable: draft_id=%s, error=%v", route, id, err)
		handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)

	case errors.Is(err, drafts.ErrNotOnSummary):
		h.logger.Warn("%s - Draft not on summary: draft_id=%s", route, id)
		handlers.RespondError(w, http.StatusConflict, msgNotOnSummary)

	case errors.Is(err, drafts.ErrSubmitInProgress):
		h.logger.Warn("%s - Submit in progress: draft_id=%s", route, id)
		handlers.RespondConflict(w, msgSubmitInProgress)

	case errors.As(err, &incomplete):
		h.logger.Warn("%s - Incomplete draft: draft_id=%s, error=%v", route, id, err)
		handlers.RespondUnprocessable(w, msgIncompleteDraft, handlers.FieldErrorsMap(incomplete.Fields))

	case errors.Is(err, commit_reservation.ErrStoreRejected):
		h.logger.Error("%s - Store rejected appointment: draft_id=%s, error=%v", route, id, err)
		handlers.RespondBadGateway(w, msgCouldNotCompleteBkg)

	default:
		h.logger.Error("%s - Failed: draft_id=%s, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}

func draftID(r *http.Request) string {
	return mux.Vars(r)["draftId"]
}

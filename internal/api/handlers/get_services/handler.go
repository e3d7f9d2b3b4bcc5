package get_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/BarberShop-BookingService/internal/api/handlers"
	"github.com/m04kA/BarberShop-BookingService/internal/service/catalog"
)

const msgCatalogUnavailable = "каталог услуг временно недоступен"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.LoadServices(r.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogUnavailable) {
			h.logger.Warn("GET /services - Catalog unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)
			return
		}
		h.logger.Error("GET /services - Failed to load services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Returned %d services", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(services))
}

package get_barbers

import (
	"errors"
	"net/http"

	"github.com/m04kA/BarberShop-BookingService/internal/api/handlers"
	"github.com/m04kA/BarberShop-BookingService/internal/service/catalog"
)

const msgCatalogUnavailable = "список барберов временно недоступен"

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

// Handle GET /api/v1/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.LoadProviders(r.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogUnavailable) {
			h.logger.Warn("GET /barbers - Catalog unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)
			return
		}
		h.logger.Error("GET /barbers - Failed to load barbers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbers - Returned %d barbers", len(providers))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(providers))
}

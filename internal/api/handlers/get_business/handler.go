package get_business

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tmnkv/RSV-BookingService/internal/api/handlers"
	catalogService "github.com/tmnkv/RSV-BookingService/internal/service/catalog"
)

const (
	msgMissingSlug      = "идентификатор страницы обязателен"
	msgBusinessNotFound = "бизнес не найден"
)

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

// Handle GET /api/v1/businesses/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slug := vars["slug"]
	if slug == "" {
		h.logger.Warn("GET /businesses/{slug} - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	// Вызываем сервис
	result, err := h.service.GetBusinessPage(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{slug} - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /businesses/{slug} - Failed to get business page: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{slug} - Business page retrieved successfully: slug=%s, business_id=%d",
		slug, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

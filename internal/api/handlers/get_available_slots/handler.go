package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tmnkv/RSV-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/tmnkv/RSV-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingBusinessID    = "ID бизнеса обязателен"
	msgInvalidBusinessID    = "некорректный ID бизнеса"
	msgMissingServiceID     = "ID услуги обязателен"
	msgInvalidServiceID     = "некорректный ID услуги"
	msgInvalidStaffMemberID = "некорректный ID сотрудника"
	msgMissingDate          = "дата обязательна"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBusinessNotFound     = "бизнес не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgStaffMemberNotFound  = "сотрудник не найден"
	msgStaffNotQualified    = "сотрудник не выполняет эту услугу"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: business_id (required), service_id (required),
// date (required, YYYY-MM-DD), staff_id (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем business_id из query параметров
	businessIDStr := query.Get("business_id")
	if businessIDStr == "" {
		h.logger.Warn("GET /availability - Missing business ID")
		handlers.RespondBadRequest(w, msgMissingBusinessID)
		return
	}

	businessID, err := strconv.ParseInt(businessIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	// Извлекаем service_id из query параметров
	serviceIDStr := query.Get("service_id")
	if serviceIDStr == "" {
		h.logger.Warn("GET /availability - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем staff_id из query параметров (опционально)
	var staffMemberID *int64
	if staffIDStr := query.Get("staff_id"); staffIDStr != "" {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid staff member ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffMemberID)
			return
		}
		staffMemberID = &staffID
	}

	// Извлекаем date из query параметров
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(businessID, serviceID, staffMemberID, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrBusinessNotFound):
			h.logger.Warn("GET /availability - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: business_id=%d, service_id=%d",
				businessID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffMemberNotFound):
			h.logger.Warn("GET /availability - Staff member not found: business_id=%d, staff_id=%v",
				businessID, staffMemberID)
			handlers.RespondNotFound(w, msgStaffMemberNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffNotQualified):
			h.logger.Warn("GET /availability - Staff not qualified: business_id=%d, service_id=%d, staff_id=%v",
				businessID, serviceID, staffMemberID)
			handlers.RespondBadRequest(w, msgStaffNotQualified)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /availability - Failed to get slots: business_id=%d, service_id=%d, error=%v",
				businessID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(businessID, serviceID, result)

	h.logger.Info("GET /availability - Slots retrieved successfully: business_id=%d, service_id=%d, slots_count=%d",
		businessID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

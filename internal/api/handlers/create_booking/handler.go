package create_booking

import (
	"errors"
	"net/http"

	"github.com/tmnkv/RSV-BookingService/internal/api/handlers"
	createBooking "github.com/tmnkv/RSV-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgBusinessNotFound    = "бизнес не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgStaffMemberNotFound = "сотрудник не найден"
	msgStaffRequired       = "для этой услуги необходимо выбрать сотрудника"
	msgStaffNotQualified   = "сотрудник не выполняет эту услугу"
	msgInvalidBookingDate  = "некорректная дата бронирования"
	msgBusinessClosed      = "закрыто в выбранную дату"
	msgOutsideHours        = "выбранное время вне часов работы"
	msgSlotAlreadyBooked   = "выбранный временной слот уже занят"
	msgNoCapacity          = "недостаточно свободных мест на выбранное время"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrBusinessNotFound):
			h.logger.Warn("POST /bookings - Business not found: business_id=%d", req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: business_id=%d, service_id=%d",
				req.BusinessID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrStaffMemberNotFound):
			h.logger.Warn("POST /bookings - Staff member not found: business_id=%d, staff_id=%v",
				req.BusinessID, req.StaffMemberID)
			handlers.RespondNotFound(w, msgStaffMemberNotFound)

		case errors.Is(err, createBooking.ErrStaffRequired):
			h.logger.Warn("POST /bookings - Staff required: business_id=%d, service_id=%d",
				req.BusinessID, req.ServiceID)
			handlers.RespondBadRequest(w, msgStaffRequired)

		case errors.Is(err, createBooking.ErrStaffNotQualified):
			h.logger.Warn("POST /bookings - Staff not qualified: business_id=%d, service_id=%d, staff_id=%v",
				req.BusinessID, req.ServiceID, req.StaffMemberID)
			handlers.RespondBadRequest(w, msgStaffNotQualified)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: business_id=%d", req.BusinessID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrBusinessClosed):
			h.logger.Warn("POST /bookings - Business closed: business_id=%d, date=%s",
				req.BusinessID, req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgBusinessClosed)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /bookings - Outside business hours: business_id=%d, time=%s",
				req.BusinessID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgOutsideHours)

		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: business_id=%d, date=%s, time=%s",
				req.BusinessID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrNoCapacity):
			h.logger.Warn("POST /bookings - No capacity: business_id=%d, date=%s, time=%s, party=%d",
				req.BusinessID, req.BookingDate, req.StartTime, req.PartySize)
			handlers.RespondError(w, http.StatusConflict, msgNoCapacity)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: business_id=%d, error=%v",
				req.BusinessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, code=%s, business_id=%d",
		result.ID, result.ConfirmationCode, req.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

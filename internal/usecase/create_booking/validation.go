package create_booking

import (
	"fmt"
	"time"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	"github.com/tmnkv/RSV-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StaffMemberID != nil && *req.StaffMemberID <= 0 {
		return fmt.Errorf("%w: staffMemberID must be positive", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано и корректно
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.PartySize < 0 || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between 1 and %d", ErrInvalidInput, domain.MaxPartySize)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests is too long", ErrInvalidInput)
	}

	return nil
}

// validateSchedule проверяет запрошенное окно против правил расписания и
// исключений. Порядок проверок фиксирован: сначала наличие расписания на
// день, затем попадание в часы работы, затем исключение-закрытие.
func validateSchedule(
	rules []*domain.AvailabilityRule,
	override *domain.SpecialAvailability,
	start, end types.TimeString,
) error {
	// 1. На день недели должно существовать хотя бы одно правило
	if len(rules) == 0 {
		return fmt.Errorf("%w: %s", ErrBusinessClosed, domain.MsgClosedOnThisDay)
	}

	// 2. Окно [start, end] целиком внутри хотя бы одного правила
	withinHours := false
	for _, rule := range rules {
		if rule.Contains(start, end) {
			withinHours = true
			break
		}
	}
	if !withinHours {
		return ErrOutsideBusinessHours
	}

	// 3. Исключение-закрытие перекрывает уже пройденные проверки правил
	if override != nil && !override.IsAvailable {
		return fmt.Errorf("%w: %s", ErrBusinessClosed, override.ClosureReason())
	}

	return nil
}

// validateConflicts проверяет запрошенное окно против активных броней дня.
// Сотрудник - ресурс емкости 1; услуга с capacity 1 - тоже; для capacity > 1
// суммируются размеры групп пересекающихся броней.
func validateConflicts(
	bookings []*domain.Booking,
	service *domain.Service,
	staffID *int64,
	partySize int,
	start, end types.TimeString,
) error {
	if staffID != nil {
		if domain.HasStaffOverlap(bookings, *staffID, start, end) {
			return ErrSlotAlreadyBooked
		}
		return nil
	}

	if service.Capacity <= 1 {
		if domain.HasServiceOverlap(bookings, service.ID, start, end) {
			return ErrSlotAlreadyBooked
		}
		return nil
	}

	if domain.ExceedsCapacity(bookings, service, partySize, start, end) {
		return ErrNoCapacity
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

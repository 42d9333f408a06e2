package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	availabilityRepo "github.com/tmnkv/RSV-BookingService/internal/infra/storage/availability"
	catalogRepo "github.com/tmnkv/RSV-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для получения доступных слотов для бронирования.
// Результат консультативный: между выдачей списка и созданием брони другой
// клиент может занять слот, поэтому финальное решение всегда принимает
// валидатор в create_booking.
type UseCase struct {
	bookingRepo      BookingRepository
	catalogRepo      CatalogRepository
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		catalogRepo:      catalogRepo,
		availabilityRepo: availabilityRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, service=%d, staff=%v, date=%s",
		req.BusinessID, req.ServiceID, req.StaffMemberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем бизнес
	if _, err := uc.catalogRepo.GetBusinessByID(ctx, req.BusinessID); err != nil {
		if errors.Is(err, catalogRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Если указан сотрудник - проверяем, что он существует и выполняет услугу
	if req.StaffMemberID != nil {
		staff, err := uc.catalogRepo.GetStaffMember(ctx, req.BusinessID, *req.StaffMemberID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStaffMemberNotFound) {
				uc.logger.Warn("GetAvailableSlots: staff id=%d not found", *req.StaffMemberID)
				return nil, ErrStaffMemberNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", *req.StaffMemberID, err)
			return nil, fmt.Errorf("%w: failed to get staff member: %v", ErrInternal, err)
		}
		if !staff.CanPerform(service.ID) {
			uc.logger.Warn("GetAvailableSlots: staff id=%d does not perform service id=%d",
				*req.StaffMemberID, req.ServiceID)
			return nil, ErrStaffNotQualified
		}
	}

	// 6. Дата в прошлом - пустой список с пояснением
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, service, domain.MsgDateInPast), nil
	}

	// 7. Получаем правила расписания на день недели
	dayOfWeek := int(req.Date.Weekday())
	rules, err := uc.availabilityRepo.ListRules(ctx, req.BusinessID, req.StaffMemberID, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list availability rules: %v", ErrInternal, err)
	}

	if len(rules) == 0 {
		uc.logger.Info("GetAvailableSlots: no rules for business=%d on weekday=%d", req.BusinessID, dayOfWeek)
		return uc.emptyResponse(req, service, domain.MsgClosedOnThisDay), nil
	}

	// 8. Исключение на дату: полное закрытие перекрывает все правила
	override, err := uc.availabilityRepo.FindOverride(ctx, req.BusinessID, req.StaffMemberID, req.Date)
	if err != nil && !errors.Is(err, availabilityRepo.ErrOverrideNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to find override: %v", err)
		return nil, fmt.Errorf("%w: failed to find override: %v", ErrInternal, err)
	}
	if override != nil && !override.IsAvailable {
		uc.logger.Info("GetAvailableSlots: business=%d closed on %s by override",
			req.BusinessID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, service, override.ClosureReason()), nil
	}

	// 9. Получаем активные брони на дату
	bookings, err := uc.bookingRepo.GetByBusinessWithFilter(ctx, domain.BusinessBookingsFilter{
		BusinessID: req.BusinessID,
		Date:       &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 10. Генерируем слоты по всем правилам
	slots, err := generateSlots(rules, bookings, service, req.StaffMemberID, domain.DefaultSlotGranularityMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for business=%d, service=%d, date=%s",
		len(slots), req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, service *domain.Service, message string) *Response {
	return &Response{
		Date:            req.Date,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		Slots:           []domain.Slot{},
		Message:         message,
	}
}

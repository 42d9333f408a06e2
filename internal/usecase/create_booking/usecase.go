package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	availabilityRepo "github.com/tmnkv/RSV-BookingService/internal/infra/storage/availability"
	catalogRepo "github.com/tmnkv/RSV-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для создания бронирования.
//
// Валидатор намеренно перепроверяет те же ограничения, что и генератор
// слотов: клиент может держать устаревший список, пока другой клиент
// занимает слот. Решение о доступности принимается в сериализуемой
// транзакции по свежим броням (FOR UPDATE) непосредственно перед вставкой -
// это единственный источник истины.
type UseCase struct {
	bookingRepo      BookingRepository
	catalogRepo      CatalogRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		catalogRepo:      catalogRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: business=%d, service=%d, staff=%v, date=%s, time=%s, party=%d",
		req.BusinessID, req.ServiceID, req.StaffMemberID, req.Date.Format(domain.DateFormat),
		req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Размер группы по умолчанию - один человек
	partySize := req.PartySize
	if partySize == 0 {
		partySize = domain.DefaultPartySize
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем бизнес
	if _, err := uc.catalogRepo.GetBusinessByID(ctx, req.BusinessID); err != nil {
		if errors.Is(err, catalogRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Услуга с персональным мастером требует выбора сотрудника
	if service.RequiresStaff && req.StaffMemberID == nil {
		uc.logger.Warn("CreateBooking: service id=%d requires staff, none given", req.ServiceID)
		return nil, ErrStaffRequired
	}

	// 6. Если сотрудник указан - проверяем существование и квалификацию
	var staffName *string
	if req.StaffMemberID != nil {
		staff, err := uc.catalogRepo.GetStaffMember(ctx, req.BusinessID, *req.StaffMemberID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStaffMemberNotFound) {
				uc.logger.Warn("CreateBooking: staff id=%d not found", *req.StaffMemberID)
				return nil, ErrStaffMemberNotFound
			}
			uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", *req.StaffMemberID, err)
			return nil, fmt.Errorf("%w: failed to get staff member: %v", ErrInternal, err)
		}
		if !staff.CanPerform(service.ID) {
			uc.logger.Warn("CreateBooking: staff id=%d does not perform service id=%d",
				*req.StaffMemberID, req.ServiceID)
			return nil, ErrStaffNotQualified
		}
		staffName = &staff.Name
	}

	// 7. Дата не должна быть в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 8. Вычисляем окно брони: конец = начало + длительность услуги.
	// Буферы в сохраняемое окно не входят - они учтены генератором слотов.
	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: booking window crosses midnight: %v", err)
		return nil, fmt.Errorf("%w: booking window must not cross midnight", ErrInvalidInput)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 9. Решение о доступности и вставка - одна сериализуемая транзакция
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Правила расписания на день недели
		dayOfWeek := int(req.Date.Weekday())
		rules, err := uc.availabilityRepo.ListRules(txCtx, req.BusinessID, req.StaffMemberID, dayOfWeek)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list rules: %v", err)
			return fmt.Errorf("%w: failed to list availability rules: %v", ErrInternal, err)
		}

		// 9.2. Исключение на дату
		override, err := uc.availabilityRepo.FindOverride(txCtx, req.BusinessID, req.StaffMemberID, req.Date)
		if err != nil && !errors.Is(err, availabilityRepo.ErrOverrideNotFound) {
			uc.logger.Error("CreateBooking: failed to find override: %v", err)
			return fmt.Errorf("%w: failed to find override: %v", ErrInternal, err)
		}

		// 9.3. Расписание: есть правила, окно внутри часов, нет закрытия
		if err := validateSchedule(rules, override, req.StartTime, endTime); err != nil {
			uc.logger.Warn("CreateBooking: schedule validation failed: %v", err)
			return err
		}

		// 9.4. Свежие активные брони дня с блокировкой строк (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByBusinessWithFilter(txCtx, domain.BusinessBookingsFilter{
			BusinessID: req.BusinessID,
			Date:       &req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 9.5. Конфликты: пересечения и вместимость
		if err := validateConflicts(bookings, service, req.StaffMemberID, partySize, req.StartTime, endTime); err != nil {
			uc.logger.Warn("CreateBooking: conflict check failed: %v", err)
			return err
		}

		// 9.6. Создаем бронирование
		booking := &domain.Booking{
			BusinessID:      req.BusinessID,
			ServiceID:       req.ServiceID,
			StaffMemberID:   req.StaffMemberID,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			PartySize:       partySize,
			TotalAmount:     service.Price,
			SpecialRequests: req.SpecialRequests,
			Status:          domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, code=%s",
		result.ID, result.ConfirmationCode())

	return &Response{
		ID:               result.ID,
		ConfirmationCode: result.ConfirmationCode(),
		BusinessID:       result.BusinessID,
		ServiceID:        result.ServiceID,
		StaffMemberID:    result.StaffMemberID,
		CustomerName:     result.CustomerName,
		ServiceName:      service.Name,
		StaffName:        staffName,
		BookingDate:      result.BookingDate,
		StartTime:        result.StartTime,
		EndTime:          result.EndTime,
		PartySize:        result.PartySize,
		TotalAmount:      result.TotalAmount,
		Status:           string(result.Status),
		CreatedAt:        result.CreatedAt,
	}, nil
}

package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	availabilityRepo "github.com/tmnkv/RSV-BookingService/internal/infra/storage/availability"
	catalogRepo "github.com/tmnkv/RSV-BookingService/internal/infra/storage/catalog"
	getAvailableSlots "github.com/tmnkv/RSV-BookingService/internal/usecase/get_available_slots"
	"github.com/tmnkv/RSV-BookingService/pkg/ptr"
)

// Фейки репозиториев. Общие для обоих usecase: тест согласованности
// генератора и валидатора гоняет их на одних и тех же данных.

type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) GetByBusinessWithFilter(_ context.Context, _ domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		if b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

type fakeCatalogRepo struct {
	business *domain.Business
	service  *domain.Service
	staff    *domain.StaffMember
}

func (f *fakeCatalogRepo) GetBusinessByID(_ context.Context, id int64) (*domain.Business, error) {
	if f.business == nil || f.business.ID != id {
		return nil, catalogRepo.ErrBusinessNotFound
	}
	return f.business, nil
}

func (f *fakeCatalogRepo) GetService(_ context.Context, _, serviceID int64) (*domain.Service, error) {
	if f.service == nil || f.service.ID != serviceID {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return f.service, nil
}

func (f *fakeCatalogRepo) GetStaffMember(_ context.Context, _, staffID int64) (*domain.StaffMember, error) {
	if f.staff == nil || f.staff.ID != staffID {
		return nil, catalogRepo.ErrStaffMemberNotFound
	}
	return f.staff, nil
}

type fakeAvailabilityRepo struct {
	rules    []*domain.AvailabilityRule
	override *domain.SpecialAvailability
}

func (f *fakeAvailabilityRepo) ListRules(_ context.Context, _ int64, _ *int64, dayOfWeek int) ([]*domain.AvailabilityRule, error) {
	out := make([]*domain.AvailabilityRule, 0)
	for _, r := range f.rules {
		if r.DayOfWeek == dayOfWeek {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) FindOverride(_ context.Context, _ int64, _ *int64, _ time.Time) (*domain.SpecialAvailability, error) {
	if f.override == nil {
		return nil, availabilityRepo.ErrOverrideNotFound
	}
	return f.override, nil
}

// fakeTxManager выполняет fn без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var (
	testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	// 6 октября 2025 - понедельник
	testMonday = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
)

func restaurantFixture() (*fakeBookingRepo, *fakeCatalogRepo, *fakeAvailabilityRepo) {
	return &fakeBookingRepo{},
		&fakeCatalogRepo{
			business: &domain.Business{ID: 1, Name: "Trattoria", Type: domain.BusinessTypeRestaurant, IsActive: true},
			service: &domain.Service{
				ID: 5, BusinessID: 1, Name: "Столик у окна",
				DurationMinutes: 120, Price: 0, Capacity: 4, IsActive: true,
			},
		},
		&fakeAvailabilityRepo{
			rules: []*domain.AvailabilityRule{
				{BusinessID: 1, DayOfWeek: 1, StartTime: "17:00", EndTime: "23:00", IsActive: true},
			},
		}
}

func salonFixture() (*fakeBookingRepo, *fakeCatalogRepo, *fakeAvailabilityRepo) {
	return &fakeBookingRepo{},
		&fakeCatalogRepo{
			business: &domain.Business{ID: 2, Name: "Salon Chic", Type: domain.BusinessTypeHairSalon, IsActive: true},
			service: &domain.Service{
				ID: 1, BusinessID: 2, Name: "Стрижка",
				DurationMinutes: 45, Price: 1500, Capacity: 1, RequiresStaff: true, IsActive: true,
			},
			staff: &domain.StaffMember{ID: 7, BusinessID: 2, Name: "Анна", IsActive: true, ServiceIDs: []int64{1}},
		},
		&fakeAvailabilityRepo{
			rules: []*domain.AvailabilityRule{
				{BusinessID: 2, DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsActive: true},
			},
		}
}

func newTestUseCase(bookings *fakeBookingRepo, catalog *fakeCatalogRepo, availability *fakeAvailabilityRepo) *UseCase {
	uc := NewUseCase(bookings, catalog, availability, fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_AcceptsAndPersists(t *testing.T) {
	bookings, catalog, availability := restaurantFixture()
	uc := newTestUseCase(bookings, catalog, availability)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:    1,
		ServiceID:     5,
		CustomerName:  "Мария Иванова",
		CustomerEmail: "maria@example.com",
		Date:          testMonday,
		StartTime:     "19:00",
		PartySize:     2,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "BK000001", resp.ConfirmationCode)
	assert.Equal(t, "21:00", resp.EndTime.String())
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 2, resp.PartySize)
	require.Len(t, bookings.bookings, 1)
	assert.Equal(t, domain.StatusPending, bookings.bookings[0].Status)
}

func TestExecute_DefaultPartySize(t *testing.T) {
	bookings, catalog, availability := restaurantFixture()
	uc := newTestUseCase(bookings, catalog, availability)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:    1,
		ServiceID:     5,
		CustomerName:  "Мария Иванова",
		CustomerEmail: "maria@example.com",
		Date:          testMonday,
		StartTime:     "19:00",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPartySize, resp.PartySize)
}

func TestExecute_StaffConflict(t *testing.T) {
	bookings, catalog, availability := salonFixture()
	// Мастер занят с 10:00 до 10:45
	bookings.bookings = []*domain.Booking{
		{ServiceID: 1, StaffMemberID: ptr.Ptr(int64(7)), StartTime: "10:00", EndTime: "10:45",
			PartySize: 1, Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(bookings, catalog, availability)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID:    2,
		ServiceID:     1,
		StaffMemberID: ptr.Ptr(int64(7)),
		CustomerName:  "Олег Петров",
		CustomerEmail: "oleg@example.com",
		Date:          testMonday,
		StartTime:     "10:30",
	})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	// Сразу после освобождения мастера бронь проходит
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:    2,
		ServiceID:     1,
		StaffMemberID: ptr.Ptr(int64(7)),
		CustomerName:  "Олег Петров",
		CustomerEmail: "oleg@example.com",
		Date:          testMonday,
		StartTime:     "10:45",
	})
	require.NoError(t, err)
	assert.Equal(t, "11:30", resp.EndTime.String())
}

func TestExecute_CapacityAccounting(t *testing.T) {
	bookings, catalog, availability := restaurantFixture()
	// Столик на 4 занят группой из 4 с 19:00 до 21:00
	bookings.bookings = []*domain.Booking{
		{ServiceID: 5, StartTime: "19:00", EndTime: "21:00", PartySize: 4, Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(bookings, catalog, availability)

	// Пересекающееся окно отклоняется даже для группы из 2
	_, err := uc.Execute(context.Background(), &Request{
		BusinessID:    1,
		ServiceID:     5,
		CustomerName:  "Павел Смирнов",
		CustomerEmail: "pavel@example.com",
		Date:          testMonday,
		StartTime:     "19:30",
		PartySize:     2,
	})
	assert.ErrorIs(t, err, ErrNoCapacity)

	// Стык с существующей бронью проходит
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID:    1,
		ServiceID:     5,
		CustomerName:  "Павел Смирнов",
		CustomerEmail: "pavel@example.com",
		Date:          testMonday,
		StartTime:     "21:00",
		PartySize:     4,
	})
	require.NoError(t, err)
	assert.Equal(t, "23:00", resp.EndTime.String())
}

func TestExecute_ScheduleChecks(t *testing.T) {
	t.Run("past date", func(t *testing.T) {
		bookings, catalog, availability := restaurantFixture()
		uc := newTestUseCase(bookings, catalog, availability)

		_, err := uc.Execute(context.Background(), &Request{
			BusinessID:    1,
			ServiceID:     5,
			CustomerName:  "Мария Иванова",
			CustomerEmail: "maria@example.com",
			Date:          testNow.AddDate(0, 0, -1),
			StartTime:     "19:00",
		})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("closed weekday", func(t *testing.T) {
		bookings, catalog, availability := restaurantFixture()
		uc := newTestUseCase(bookings, catalog, availability)

		// 7 октября 2025 - вторник, правил нет
		_, err := uc.Execute(context.Background(), &Request{
			BusinessID:    1,
			ServiceID:     5,
			CustomerName:  "Мария Иванова",
			CustomerEmail: "maria@example.com",
			Date:          time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC),
			StartTime:     "19:00",
		})
		assert.ErrorIs(t, err, ErrBusinessClosed)
	})

	t.Run("outside business hours", func(t *testing.T) {
		bookings, catalog, availability := restaurantFixture()
		uc := newTestUseCase(bookings, catalog, availability)

		_, err := uc.Execute(context.Background(), &Request{
			BusinessID:    1,
			ServiceID:     5,
			CustomerName:  "Мария Иванова",
			CustomerEmail: "maria@example.com",
			Date:          testMonday,
			StartTime:     "12:00",
		})
		assert.ErrorIs(t, err, ErrOutsideBusinessHours)
	})

	t.Run("closure override", func(t *testing.T) {
		bookings, catalog, availability := restaurantFixture()
		availability.override = &domain.SpecialAvailability{
			BusinessID: 1, Date: testMonday, IsAvailable: false,
		}
		uc := newTestUseCase(bookings, catalog, availability)

		_, err := uc.Execute(context.Background(), &Request{
			BusinessID:    1,
			ServiceID:     5,
			CustomerName:  "Мария Иванова",
			CustomerEmail: "maria@example.com",
			Date:          testMonday,
			StartTime:     "19:00",
		})
		assert.ErrorIs(t, err, ErrBusinessClosed)
	})
}

func TestExecute_StaffChecks(t *testing.T) {
	t.Run("staff required", func(t *testing.T) {
		bookings, catalog, availability := salonFixture()
		uc := newTestUseCase(bookings, catalog, availability)

		_, err := uc.Execute(context.Background(), &Request{
			BusinessID:    2,
			ServiceID:     1,
			CustomerName:  "Олег Петров",
			CustomerEmail: "oleg@example.com",
			Date:          testMonday,
			StartTime:     "10:00",
		})
		assert.ErrorIs(t, err, ErrStaffRequired)
	})

	t.Run("staff not qualified", func(t *testing.T) {
		bookings, catalog, availability := salonFixture()
		catalog.staff.ServiceIDs = []int64{99}
		uc := newTestUseCase(bookings, catalog, availability)

		_, err := uc.Execute(context.Background(), &Request{
			BusinessID:    2,
			ServiceID:     1,
			StaffMemberID: ptr.Ptr(int64(7)),
			CustomerName:  "Олег Петров",
			CustomerEmail: "oleg@example.com",
			Date:          testMonday,
			StartTime:     "10:00",
		})
		assert.ErrorIs(t, err, ErrStaffNotQualified)
	})

	t.Run("staff not found", func(t *testing.T) {
		bookings, catalog, availability := salonFixture()
		uc := newTestUseCase(bookings, catalog, availability)

		_, err := uc.Execute(context.Background(), &Request{
			BusinessID:    2,
			ServiceID:     1,
			StaffMemberID: ptr.Ptr(int64(99)),
			CustomerName:  "Олег Петров",
			CustomerEmail: "oleg@example.com",
			Date:          testMonday,
			StartTime:     "10:00",
		})
		assert.ErrorIs(t, err, ErrStaffMemberNotFound)
	})
}

// Каждый слот, который выдает генератор, обязан проходить валидатор:
// расхождение между ними означало бы, что клиент видит время, которое
// нельзя забронировать.
func TestGeneratorValidatorAgreement(t *testing.T) {
	bookings, catalog, availability := restaurantFixture()
	// Частично занятый день: группа из 3 с 18:00 до 20:00
	bookings.bookings = []*domain.Booking{
		{ServiceID: 5, StartTime: "18:00", EndTime: "20:00", PartySize: 3, Status: domain.StatusConfirmed},
	}

	generator := getAvailableSlots.NewUseCase(bookings, catalog, availability, noopLogger{})
	validator := newTestUseCase(bookings, catalog, availability)

	// Генератор живет на реальных часах, поэтому берем ближайший
	// понедельник в будущем
	futureMonday := time.Now().AddDate(0, 0, 7)
	for futureMonday.Weekday() != time.Monday {
		futureMonday = futureMonday.AddDate(0, 0, 1)
	}
	futureMonday = time.Date(futureMonday.Year(), futureMonday.Month(), futureMonday.Day(), 0, 0, 0, 0, time.UTC)

	listing, err := generator.Execute(context.Background(), &getAvailableSlots.Request{
		BusinessID: 1,
		ServiceID:  5,
		Date:       futureMonday,
	})
	require.NoError(t, err)
	require.NotEmpty(t, listing.Slots)

	for _, slot := range listing.Slots {
		saved := len(bookings.bookings)

		_, err := validator.Execute(context.Background(), &Request{
			BusinessID:    1,
			ServiceID:     5,
			CustomerName:  "Агент Проверки",
			CustomerEmail: "agent@example.com",
			Date:          futureMonday,
			StartTime:     slot.StartTime,
			PartySize:     1,
		})
		require.NoError(t, err, "generator offered %s but validator rejected it", slot.StartTime)

		// Откатываем вставку, чтобы слоты проверялись независимо
		bookings.bookings = bookings.bookings[:saved]
	}
}

package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	availabilityRepo "github.com/tmnkv/RSV-BookingService/internal/infra/storage/availability"
	catalogRepo "github.com/tmnkv/RSV-BookingService/internal/infra/storage/catalog"
	"github.com/tmnkv/RSV-BookingService/pkg/ptr"
)

// Фейки репозиториев для тестов usecase

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByBusinessWithFilter(_ context.Context, _ domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
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

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Фикстуры: ресторан со столиком на 4 места, ужин 120 минут,
// понедельник 17:00-22:00.

var (
	testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	// 6 октября 2025 - понедельник
	testMonday = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(bookings *fakeBookingRepo, catalog *fakeCatalogRepo, availability *fakeAvailabilityRepo) *UseCase {
	uc := NewUseCase(bookings, catalog, availability, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func restaurantFixture() (*fakeBookingRepo, *fakeCatalogRepo, *fakeAvailabilityRepo) {
	return &fakeBookingRepo{},
		&fakeCatalogRepo{
			business: &domain.Business{ID: 1, Name: "Trattoria", Type: domain.BusinessTypeRestaurant, IsActive: true},
			service:  &domain.Service{ID: 5, BusinessID: 1, Name: "Столик у окна", DurationMinutes: 120, Capacity: 4, IsActive: true},
		},
		&fakeAvailabilityRepo{
			rules: []*domain.AvailabilityRule{
				{BusinessID: 1, DayOfWeek: 1, StartTime: "17:00", EndTime: "22:00", IsActive: true},
			},
		}
}

func TestExecute_HappyPath(t *testing.T) {
	bookings, catalog, availability := restaurantFixture()
	uc := newTestUseCase(bookings, catalog, availability)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceID:  5,
		Date:       testMonday,
	})
	require.NoError(t, err)

	assert.Equal(t, "Столик у окна", resp.ServiceName)
	assert.Equal(t, 120, resp.DurationMinutes)
	assert.Empty(t, resp.Message)
	require.Len(t, resp.Slots, 13)
	assert.Equal(t, "17:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "20:00", resp.Slots[len(resp.Slots)-1].StartTime.String())
}

func TestExecute_PastDate(t *testing.T) {
	bookings, catalog, availability := restaurantFixture()
	uc := newTestUseCase(bookings, catalog, availability)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceID:  5,
		Date:       testNow.AddDate(0, 0, -1),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, domain.MsgDateInPast, resp.Message)
}

func TestExecute_ClosedDay(t *testing.T) {
	bookings, catalog, availability := restaurantFixture()
	uc := newTestUseCase(bookings, catalog, availability)

	// 7 октября 2025 - вторник, правил нет
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceID:  5,
		Date:       time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, domain.MsgClosedOnThisDay, resp.Message)
}

func TestExecute_OverrideClosure(t *testing.T) {
	bookings, catalog, availability := restaurantFixture()
	reason := "инвентаризация"
	availability.override = &domain.SpecialAvailability{
		BusinessID:  1,
		Date:        testMonday,
		IsAvailable: false,
		Reason:      &reason,
	}
	uc := newTestUseCase(bookings, catalog, availability)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceID:  5,
		Date:       testMonday,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, reason, resp.Message)
}

func TestExecute_CapacityFiltering(t *testing.T) {
	bookings, catalog, availability := restaurantFixture()
	// Столик полностью занят с 19:00 до 21:00
	bookings.bookings = []*domain.Booking{
		{ServiceID: 5, StartTime: "19:00", EndTime: "21:00", PartySize: 4, Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(bookings, catalog, availability)

	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1,
		ServiceID:  5,
		Date:       testMonday,
	})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		end, addErr := slot.StartTime.AddMinutes(120)
		require.NoError(t, addErr)
		// Ни один слот не пересекает занятое окно
		overlaps := slot.StartTime.Minutes() < 21*60 && end.Minutes() > 19*60
		assert.False(t, overlaps, "slot %s overlaps fully booked window", slot.StartTime)
	}
	assert.Equal(t, "17:00", resp.Slots[0].StartTime.String())
}

func TestExecute_NotFoundErrors(t *testing.T) {
	bookings, catalog, availability := restaurantFixture()
	uc := newTestUseCase(bookings, catalog, availability)

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 99, ServiceID: 5, Date: testMonday})
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	_, err = uc.Execute(context.Background(), &Request{BusinessID: 1, ServiceID: 99, Date: testMonday})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		BusinessID: 1, ServiceID: 5, StaffMemberID: ptr.Ptr(int64(99)), Date: testMonday,
	})
	assert.ErrorIs(t, err, ErrStaffMemberNotFound)
}

func TestExecute_StaffNotQualified(t *testing.T) {
	bookings, catalog, availability := restaurantFixture()
	catalog.staff = &domain.StaffMember{ID: 7, BusinessID: 1, Name: "Анна", IsActive: true, ServiceIDs: []int64{99}}
	uc := newTestUseCase(bookings, catalog, availability)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: 1, ServiceID: 5, StaffMemberID: ptr.Ptr(int64(7)), Date: testMonday,
	})
	assert.ErrorIs(t, err, ErrStaffNotQualified)
}

package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmnkv/RSV-BookingService/internal/domain"
	bookingRepo "github.com/tmnkv/RSV-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/tmnkv/RSV-BookingService/internal/infra/storage/catalog"
	"github.com/tmnkv/RSV-BookingService/internal/service/bookings/models"
	"github.com/tmnkv/RSV-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	byID      map[int64]*domain.Booking
	cancelled map[int64]string
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	f := &fakeBookingRepo{
		byID:      make(map[int64]*domain.Booking),
		cancelled: make(map[int64]string),
	}
	for _, b := range bookings {
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByBusinessWithFilter(_ context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.byID {
		if b.BusinessID != filter.BusinessID {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled[id] = reason
	return nil
}

type fakeCatalogRepo struct {
	business *domain.Business
}

func (f *fakeCatalogRepo) GetBusinessByID(_ context.Context, id int64) (*domain.Business, error) {
	if f.business == nil || f.business.ID != id {
		return nil, catalogRepo.ErrBusinessNotFound
	}
	return f.business, nil
}

func (f *fakeCatalogRepo) GetService(_ context.Context, _, _ int64) (*domain.Service, error) {
	return nil, catalogRepo.ErrServiceNotFound
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		BusinessID:    1,
		ServiceID:     5,
		CustomerName:  "Мария Иванова",
		CustomerEmail: "maria@example.com",
		BookingDate:   time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC),
		StartTime:     "19:00",
		EndTime:       "21:00",
		PartySize:     2,
		Status:        status,
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.StatusConfirmed))
	svc := NewService(repo, &fakeCatalogRepo{}, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "BK000001", resp.ConfirmationCode)
	assert.Equal(t, "19:00", resp.StartTime)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetBusinessBookings(t *testing.T) {
	repo := newFakeBookingRepo(
		testBooking(1, domain.StatusConfirmed),
		testBooking(2, domain.StatusCancelled),
	)
	catalog := &fakeCatalogRepo{business: &domain.Business{ID: 1, IsActive: true}}
	svc := NewService(repo, catalog, noopLogger{})

	// По умолчанию отдаются только активные
	resp, err := svc.GetBusinessBookings(context.Background(), &models.GetBusinessBookingsRequest{BusinessID: 1})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)

	// С include_inactive видны и отменённые
	resp, err = svc.GetBusinessBookings(context.Background(), &models.GetBusinessBookingsRequest{
		BusinessID:      1,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	// Неизвестный бизнес
	_, err = svc.GetBusinessBookings(context.Background(), &models.GetBusinessBookingsRequest{BusinessID: 42})
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	// Некорректный статус в фильтре
	_, err = svc.GetBusinessBookings(context.Background(), &models.GetBusinessBookingsRequest{
		BusinessID: 1,
		Status:     ptr.Ptr("no_such_status"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := newFakeBookingRepo(
		testBooking(1, domain.StatusConfirmed),
		testBooking(2, domain.StatusCompleted),
	)
	svc := NewService(repo, &fakeCatalogRepo{}, noopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "гость не придет"})
	require.NoError(t, err)
	assert.Equal(t, "гость не придет", repo.cancelled[1])

	// Завершённую бронь отменить нельзя
	err = svc.Cancel(context.Background(), 2, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)

	err = svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmnkv/RSV-BookingService/pkg/ptr"
	"github.com/tmnkv/RSV-BookingService/pkg/types"
)

func activeBooking(serviceID int64, staffID *int64, start, end types.TimeString, party int) *Booking {
	return &Booking{
		ServiceID:     serviceID,
		StaffMemberID: staffID,
		StartTime:     start,
		EndTime:       end,
		PartySize:     party,
		Status:        StatusConfirmed,
	}
}

func TestHasStaffOverlap(t *testing.T) {
	bookings := []*Booking{
		activeBooking(1, ptr.Ptr(int64(7)), "10:00", "10:45", 1),
	}

	// Пересечение с занятым мастером
	assert.True(t, HasStaffOverlap(bookings, 7, "10:30", "11:00"))

	// Другой мастер свободен
	assert.False(t, HasStaffOverlap(bookings, 8, "10:30", "11:00"))

	// Стык интервалов пересечением не считается
	assert.False(t, HasStaffOverlap(bookings, 7, "10:45", "11:15"))

	// Отменённая бронь мастера не блокирует
	cancelled := activeBooking(1, ptr.Ptr(int64(7)), "10:00", "10:45", 1)
	cancelled.Status = StatusCancelled
	assert.False(t, HasStaffOverlap([]*Booking{cancelled}, 7, "10:30", "11:00"))
}

func TestHasServiceOverlap(t *testing.T) {
	bookings := []*Booking{
		activeBooking(3, nil, "12:00", "13:00", 1),
	}

	assert.True(t, HasServiceOverlap(bookings, 3, "12:30", "13:30"))
	assert.False(t, HasServiceOverlap(bookings, 4, "12:30", "13:30"))
	assert.False(t, HasServiceOverlap(bookings, 3, "13:00", "14:00"))
}

func TestOverlappingPartySize(t *testing.T) {
	bookings := []*Booking{
		activeBooking(5, nil, "19:00", "21:00", 4),
		activeBooking(5, nil, "20:00", "22:00", 2),
		activeBooking(5, nil, "09:00", "10:00", 3), // вне окна
	}

	assert.Equal(t, 6, OverlappingPartySize(bookings, 5, "19:30", "21:30"))
	assert.Equal(t, 4, OverlappingPartySize(bookings, 5, "19:00", "20:00"))
	assert.Equal(t, 0, OverlappingPartySize(bookings, 5, "22:00", "23:00"))
}

func TestSlotConflicts(t *testing.T) {
	table := &Service{ID: 5, Capacity: 4}
	chair := &Service{ID: 1, Capacity: 1}

	t.Run("staff member is a capacity-1 resource", func(t *testing.T) {
		bookings := []*Booking{
			activeBooking(chair.ID, ptr.Ptr(int64(7)), "10:00", "10:45", 1),
		}
		assert.True(t, SlotConflicts(bookings, chair, ptr.Ptr(int64(7)), "10:30", "11:00"))
		assert.False(t, SlotConflicts(bookings, chair, ptr.Ptr(int64(8)), "10:30", "11:00"))
	})

	t.Run("capacity 1 rejects any overlap", func(t *testing.T) {
		bookings := []*Booking{
			activeBooking(chair.ID, nil, "10:00", "11:00", 1),
		}
		assert.True(t, SlotConflicts(bookings, chair, nil, "10:30", "11:30"))
		assert.False(t, SlotConflicts(bookings, chair, nil, "11:00", "12:00"))
	})

	t.Run("capacity above 1 conflicts only when full", func(t *testing.T) {
		bookings := []*Booking{
			activeBooking(table.ID, nil, "19:00", "21:00", 3),
		}
		// Одно место ещё свободно
		assert.False(t, SlotConflicts(bookings, table, nil, "19:30", "21:30"))

		bookings = append(bookings, activeBooking(table.ID, nil, "19:00", "21:00", 1))
		// Все места заняты
		assert.True(t, SlotConflicts(bookings, table, nil, "19:30", "21:30"))
	})
}

func TestExceedsCapacity(t *testing.T) {
	table := &Service{ID: 5, Capacity: 4}

	bookings := []*Booking{
		activeBooking(table.ID, nil, "19:00", "21:00", 4),
	}

	// Пересекающееся окно: мест нет даже для группы из 2
	assert.True(t, ExceedsCapacity(bookings, table, 2, "19:30", "21:30"))

	// Стык с существующей бронью: вся вместимость свободна
	assert.False(t, ExceedsCapacity(bookings, table, 4, "21:00", "23:00"))

	// Частичная занятость
	partial := []*Booking{
		activeBooking(table.ID, nil, "19:00", "21:00", 2),
	}
	assert.False(t, ExceedsCapacity(partial, table, 2, "19:30", "21:30"))
	assert.True(t, ExceedsCapacity(partial, table, 3, "19:30", "21:30"))
}

func TestBooking_IsActive(t *testing.T) {
	for status, want := range map[BookingStatus]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCancelled: false,
		StatusCompleted: false,
	} {
		b := &Booking{Status: status}
		assert.Equal(t, want, b.IsActive(), "status %s", status)
	}
}

func TestBooking_ConfirmationCode(t *testing.T) {
	assert.Equal(t, "BK000042", (&Booking{ID: 42}).ConfirmationCode())
	assert.Equal(t, "BK123456", (&Booking{ID: 123456}).ConfirmationCode())
}
